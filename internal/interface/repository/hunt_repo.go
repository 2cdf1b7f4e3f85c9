package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormHuntRepository implements the HuntRepository interface
type GormHuntRepository struct {
	db *gorm.DB
}

// NewGormHuntRepository creates a new GORM hunt repository
func NewGormHuntRepository(db *gorm.DB) repository.HuntRepository {
	return &GormHuntRepository{
		db: db,
	}
}

// Watchlist GORM model for database mapping
type Watchlist struct {
	ID              uint           `gorm:"primaryKey"`
	Origin          string         `gorm:"column:origin"`
	Destination     string         `gorm:"column:destination"`
	TravelDate      time.Time      `gorm:"column:travel_date"`
	FlexibilityDays int            `gorm:"column:flexibility_days"`
	IsFlexible      bool           `gorm:"column:is_flexible"`
	TargetPrice     float64        `gorm:"column:target_price"`
	UserWhatsapp    string         `gorm:"column:user_whatsapp"`
	IsActive        bool           `gorm:"column:is_active"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Watchlist) TableName() string {
	return "watchlist"
}

// Create inserts a new hunt and backfills the generated ID
func (r *GormHuntRepository) Create(ctx context.Context, hunt *entity.Hunt) error {
	row := Watchlist{
		Origin:          hunt.Origin,
		Destination:     hunt.Destination,
		TravelDate:      hunt.TravelDate,
		FlexibilityDays: hunt.FlexibilityDays,
		IsFlexible:      hunt.IsFlexible,
		TargetPrice:     hunt.TargetPrice,
		UserWhatsapp:    hunt.UserWhatsapp,
		IsActive:        hunt.IsActive,
	}

	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("hunt insert failed: %w", result.Error)
	}

	hunt.ID = row.ID
	hunt.CreatedAt = row.CreatedAt
	hunt.UpdatedAt = row.UpdatedAt
	return nil
}

// GetByID finds a hunt by its identifier
func (r *GormHuntRepository) GetByID(ctx context.Context, id uint) (*entity.Hunt, error) {
	var row Watchlist
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("hunt lookup failed: %w", result.Error)
	}

	return toHuntEntity(&row), nil
}

// ListActive returns every hunt with is_active = true
func (r *GormHuntRepository) ListActive(ctx context.Context) ([]entity.Hunt, error) {
	var rows []Watchlist
	result := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("active hunt listing failed: %w", result.Error)
	}

	hunts := make([]entity.Hunt, 0, len(rows))
	for i := range rows {
		hunts = append(hunts, *toHuntEntity(&rows[i]))
	}
	return hunts, nil
}

// Deactivate sets is_active to false. Deactivating an already-inactive hunt
// matches the same row again, so repeated calls succeed.
func (r *GormHuntRepository) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&Watchlist{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("hunt deactivation failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// toHuntEntity converts a GORM model to the domain entity
func toHuntEntity(row *Watchlist) *entity.Hunt {
	return &entity.Hunt{
		ID:              row.ID,
		Origin:          row.Origin,
		Destination:     row.Destination,
		TravelDate:      row.TravelDate,
		FlexibilityDays: row.FlexibilityDays,
		IsFlexible:      row.IsFlexible,
		TargetPrice:     row.TargetPrice,
		UserWhatsapp:    row.UserWhatsapp,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		DeletedAt:       row.DeletedAt,
	}
}
