package providerRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"serviceconnect/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "providers:"

// CachedRepo is a read-through Redis cache in front of another repository.
// Cache failures are logged and the inner repository is used instead.
type CachedRepo struct {
	inner  ProviderRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepo(inner ProviderRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepo {
	return &CachedRepo{inner: inner, client: client, ttl: ttl, logger: logger}
}

func nearbyKey(q NearbyQuery) string {
	parts := []string{q.City, q.Pincode}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return cacheKeyPrefix + strings.Join(parts, ":")
}

func (r *CachedRepo) FetchNearby(ctx context.Context, q NearbyQuery) ([]models.Provider, error) {
	key := nearbyKey(q)

	cached, err := r.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var providers []models.Provider
		if err := json.Unmarshal([]byte(cached), &providers); err == nil {
			return providers, nil
		}
		r.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	case err != redis.Nil:
		r.logger.Warn("Provider cache read failed", zap.String("key", key), zap.Error(err))
	}

	providers, err := r.inner.FetchNearby(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(providers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal providers: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("Provider cache write failed", zap.String("key", key), zap.Error(err))
	}
	return providers, nil
}

// GetByID always reads through to the inner repository.
func (r *CachedRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.inner.GetByID(ctx, id)
}
