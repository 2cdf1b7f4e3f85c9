package repository

import (
	"context"

	"skyhunt-service/internal/domain/entity"
)

// BaselineRepository defines the interface for baseline statistic operations
type BaselineRepository interface {
	// GetByKey looks up the exact (origin, destination, daysLeft) key.
	// Returns ErrNotFound when no baseline exists for the key.
	GetByKey(ctx context.Context, origin, destination string, daysLeft int) (*entity.BaselineStat, error)

	// InsertIgnore writes baseline rows, leaving existing keys untouched,
	// and returns the number of rows actually inserted.
	InsertIgnore(ctx context.Context, stats []entity.BaselineStat) (int64, error)
}
