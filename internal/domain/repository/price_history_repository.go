package repository

import (
	"context"
	"time"

	"skyhunt-service/internal/domain/entity"
)

// PriceHistoryRepository defines the interface for the append-only price log
type PriceHistoryRepository interface {
	// Append records one observation. Observations are never updated or deleted.
	Append(ctx context.Context, obs *entity.PriceObservation) error

	// ListByRoute returns observations for a route ordered by timestamp
	// ascending. A zero since returns the full history.
	ListByRoute(ctx context.Context, origin, destination string, since time.Time) ([]entity.PriceObservation, error)
}
