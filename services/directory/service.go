package directory

import (
	"context"
	"fmt"

	providerRepo "serviceconnect/database/repository/provider"
	"serviceconnect/models"

	"go.uber.org/zap"
)

// EmptyReason tells the two empty listing states apart.
type EmptyReason string

const (
	EmptyNone      EmptyReason = ""
	EmptyDirectory EmptyReason = "directory"
	EmptyNoMatch   EmptyReason = "no_match"
)

// Listing is the filtered, ordered result for one listing page.
type Listing struct {
	Providers     []models.Provider   `json:"providers"`
	Total         int                 `json:"total"`
	DirectorySize int                 `json:"directorySize"`
	EmptyReason   EmptyReason         `json:"emptyReason,omitempty"`
	Headline      string              `json:"headline"`
	Query         string              `json:"query"`
	Filters       models.FilterConfig `json:"filters"`
}

// DirectoryService produces listings from a provider repository.
type DirectoryService interface {
	Listing(ctx context.Context, q providerRepo.NearbyQuery, query string, f models.FilterConfig) (*Listing, error)
	Provider(ctx context.Context, id string) (*models.Provider, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Repo   providerRepo.ProviderRepository
	Logger *zap.Logger
}

func NewDefaultDirectoryService(repo providerRepo.ProviderRepository, logger *zap.Logger) *DefaultDirectoryService {
	return &DefaultDirectoryService{Repo: repo, Logger: logger}
}

func (s *DefaultDirectoryService) Listing(ctx context.Context, q providerRepo.NearbyQuery, query string, f models.FilterConfig) (*Listing, error) {
	dir, err := s.Repo.FetchNearby(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory: %w", err)
	}

	results := Apply(dir, query, f)
	listing := &Listing{
		Providers:     results,
		Total:         len(results),
		DirectorySize: len(dir),
		Headline:      ResultsHeadline(len(results)),
		Query:         query,
		Filters:       f,
	}
	switch {
	case len(dir) == 0:
		listing.EmptyReason = EmptyDirectory
	case len(results) == 0:
		listing.EmptyReason = EmptyNoMatch
	}

	s.Logger.Debug("Built provider listing",
		zap.String("category", q.CategoryID),
		zap.String("query", query),
		zap.Int("directory", len(dir)),
		zap.Int("results", len(results)))
	return listing, nil
}

func (s *DefaultDirectoryService) Provider(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}
