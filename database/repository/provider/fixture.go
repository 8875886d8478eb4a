package providerRepo

import (
	"context"
	"fmt"

	"serviceconnect/models"
)

// Fixtures is the compiled-in directory served when no database is configured.
func Fixtures() []models.Provider {
	return []models.Provider{
		{
			ID:           "1",
			Name:         "Rajesh Kumar",
			Service:      "Plumbing & Water Solutions",
			CategoryID:   "plumbing",
			Rating:       4.8,
			ReviewCount:  156,
			Distance:     0.8,
			Price:        "₹200-500/visit",
			Verified:     true,
			Description:  "Expert plumber with 10+ years experience. Specializes in pipe repairs, bathroom fittings, and emergency services.",
			Phone:        "+91 98765 43210",
			ResponseTime: "30 mins",
		},
		{
			ID:           "2",
			Name:         "Priya Sharma",
			Service:      "House Cleaning & Maintenance",
			CategoryID:   "housekeeping",
			Rating:       4.9,
			ReviewCount:  203,
			Distance:     1.2,
			Price:        "₹300-600/day",
			Verified:     true,
			Description:  "Professional house cleaning services with eco-friendly products. Available for daily, weekly or monthly schedules.",
			Phone:        "+91 87654 32109",
			ResponseTime: "1 hour",
		},
		{
			ID:           "3",
			Name:         "Murugan",
			Service:      "Carpentry & Furniture Repair",
			CategoryID:   "carpentry",
			Rating:       4.6,
			ReviewCount:  89,
			Distance:     2.1,
			Price:        "₹400-1200/job",
			Verified:     false,
			Description:  "Skilled carpenter for furniture repair, door/window installation, and custom woodwork.",
			Phone:        "+91 76543 21098",
			ResponseTime: "2 hours",
		},
	}
}

// FixtureRepo serves a fixed in-memory directory. It is read-only, so it is
// safe for concurrent use.
type FixtureRepo struct {
	providers []models.Provider
}

// NewFixtureRepo creates a repository over the given providers, or over
// Fixtures() when none are given.
func NewFixtureRepo(providers ...models.Provider) ProviderRepository {
	if len(providers) == 0 {
		providers = Fixtures()
	}
	cp := make([]models.Provider, len(providers))
	copy(cp, providers)
	return &FixtureRepo{providers: cp}
}

func (r *FixtureRepo) FetchNearby(ctx context.Context, q NearbyQuery) ([]models.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Provider, len(r.providers))
	copy(out, r.providers)
	return out, nil
}

func (r *FixtureRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range r.providers {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, ErrProviderNotFound)
}
