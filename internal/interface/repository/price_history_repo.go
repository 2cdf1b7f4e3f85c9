package repository

import (
	"context"
	"fmt"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPriceHistoryRepository implements the PriceHistoryRepository interface
type MongoPriceHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoPriceHistoryRepository creates a new MongoDB price history repository
func NewMongoPriceHistoryRepository(db *mongo.Database) repository.PriceHistoryRepository {
	return &MongoPriceHistoryRepository{
		collection: db.Collection("price_history"),
	}
}

// Append records one observation. The log is append-only; documents are
// never updated or removed.
func (r *MongoPriceHistoryRepository) Append(ctx context.Context, obs *entity.PriceObservation) error {
	if obs.CreatedAt.IsZero() {
		obs.CreatedAt = time.Now().UTC()
	}

	doc := bson.M{
		"origin":      obs.Origin,
		"destination": obs.Destination,
		"price":       obs.Price,
		"timestamp":   obs.Timestamp,
		"createdAt":   obs.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("observation append failed: %w", err)
	}
	return nil
}

// ListByRoute returns observations for a route ordered by timestamp
// ascending. A zero since returns the full history for the route.
func (r *MongoPriceHistoryRepository) ListByRoute(ctx context.Context, origin, destination string, since time.Time) ([]entity.PriceObservation, error) {
	filter := bson.M{
		"origin":      origin,
		"destination": destination,
	}
	if !since.IsZero() {
		filter["timestamp"] = bson.M{"$gt": since}
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("observation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var observations []entity.PriceObservation
	if err := cursor.All(ctx, &observations); err != nil {
		return nil, fmt.Errorf("observation decode failed: %w", err)
	}
	return observations, nil
}
