package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serviceconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const providersCollection = "providers"

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongoProviderRepo creates a ProviderRepository over the "providers"
// collection of the named database.
func NewMongoProviderRepo(client *mongo.Client, dbName string, logger *zap.Logger) *MongoProviderRepo {
	coll := client.Database(dbName).Collection(providersCollection)
	return &MongoProviderRepo{coll: coll, logger: logger}
}

func (r *MongoProviderRepo) FetchNearby(ctx context.Context, q NearbyQuery) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Keep a deterministic base order; the listing pipeline re-sorts by distance.
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find providers: %w", err)
	}
	defer cursor.Close(ctx)

	providers := make([]models.Provider, 0)
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	r.logger.Debug("Fetched providers from MongoDB",
		zap.String("category", q.CategoryID),
		zap.String("city", q.City),
		zap.Int("count", len(providers)))
	return providers, nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, ErrProviderNotFound)
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

// Seed upserts the given providers by id. Running it twice is harmless.
func (r *MongoProviderRepo) Seed(ctx context.Context, providers []models.Provider) error {
	if len(providers) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(providers))
	for _, p := range providers {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}
	res, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("failed to seed providers: %w", err)
	}
	r.logger.Info("Seeded provider directory",
		zap.Int64("upserted", res.UpsertedCount),
		zap.Int64("modified", res.ModifiedCount))
	return nil
}
