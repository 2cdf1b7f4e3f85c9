package repository

import (
	"context"

	"skyhunt-service/internal/domain/entity"
)

// HuntRepository defines the interface for hunt lifecycle operations
type HuntRepository interface {
	Create(ctx context.Context, hunt *entity.Hunt) error
	GetByID(ctx context.Context, id uint) (*entity.Hunt, error)
	ListActive(ctx context.Context) ([]entity.Hunt, error)

	// Deactivate sets is_active to false. Deactivating an already-inactive
	// hunt is a no-op, not an error.
	Deactivate(ctx context.Context, id uint) error
}
