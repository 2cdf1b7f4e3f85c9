package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBaselineRepository implements the BaselineRepository interface
type GormBaselineRepository struct {
	db *gorm.DB
}

// NewGormBaselineRepository creates a new GORM baseline repository
func NewGormBaselineRepository(db *gorm.DB) repository.BaselineRepository {
	return &GormBaselineRepository{
		db: db,
	}
}

// BaselineMetrics GORM model for database mapping
type BaselineMetrics struct {
	ID          uint    `gorm:"primaryKey"`
	Origin      string  `gorm:"column:origin;uniqueIndex:idx_baseline_key"`
	Destination string  `gorm:"column:destination;uniqueIndex:idx_baseline_key"`
	DaysLeft    int     `gorm:"column:days_left;uniqueIndex:idx_baseline_key"`
	MinPrice    float64 `gorm:"column:min_price"`
	AvgPrice    float64 `gorm:"column:avg_price"`
	MaxPrice    float64 `gorm:"column:max_price"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (BaselineMetrics) TableName() string {
	return "baseline_metrics"
}

// GetByKey finds the baseline for the exact (origin, destination, daysLeft)
// key. There is no fallback to nearby lead times.
func (r *GormBaselineRepository) GetByKey(ctx context.Context, origin, destination string, daysLeft int) (*entity.BaselineStat, error) {
	var stat BaselineMetrics
	result := r.db.WithContext(ctx).
		Where("origin = ? AND destination = ? AND days_left = ?", origin, destination, daysLeft).
		First(&stat)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("baseline lookup failed: %w", result.Error)
	}

	// Convert GORM model to domain entity
	return &entity.BaselineStat{
		ID:          stat.ID,
		Origin:      stat.Origin,
		Destination: stat.Destination,
		DaysLeft:    stat.DaysLeft,
		MinPrice:    stat.MinPrice,
		AvgPrice:    stat.AvgPrice,
		MaxPrice:    stat.MaxPrice,
		CreatedAt:   stat.CreatedAt,
		UpdatedAt:   stat.UpdatedAt,
	}, nil
}

// InsertIgnore writes baseline rows with insert-or-ignore semantics: rows
// whose key already exists are left untouched, so re-running the builder is
// safe. Returns the number of rows actually inserted.
func (r *GormBaselineRepository) InsertIgnore(ctx context.Context, stats []entity.BaselineStat) (int64, error) {
	if len(stats) == 0 {
		return 0, nil
	}

	rows := make([]BaselineMetrics, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, BaselineMetrics{
			Origin:      s.Origin,
			Destination: s.Destination,
			DaysLeft:    s.DaysLeft,
			MinPrice:    s.MinPrice,
			AvgPrice:    s.AvgPrice,
			MaxPrice:    s.MaxPrice,
		})
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "origin"}, {Name: "destination"}, {Name: "days_left"}},
			DoNothing: true,
		}).
		CreateInBatches(&rows, 500)

	if result.Error != nil {
		return 0, fmt.Errorf("baseline insert failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
