package providerRepo

import (
	"context"
	"errors"

	"serviceconnect/models"
)

var ErrProviderNotFound = errors.New("provider not found")

// NearbyQuery describes the listing page asking for the directory. The
// directory is the same source set for every category; CategoryID is carried
// for logging only and the area keys the cache.
type NearbyQuery struct {
	CategoryID string
	City       string
	Pincode    string
}

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// FetchNearby returns the unfiltered directory for a service area.
	FetchNearby(ctx context.Context, q NearbyQuery) ([]models.Provider, error)
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
}
