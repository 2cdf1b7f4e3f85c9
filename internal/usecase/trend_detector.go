package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"
)

// TrendDetector classifies market momentum for a route from its price
// history. The trend is the endpoint difference of the windowed series,
// deliberately sensitive to the two boundary samples; slope fitting is out.
type TrendDetector struct {
	priceHistoryRepo repository.PriceHistoryRepository
	logger           logger.Logger
}

// NewTrendDetector creates a new trend detector
func NewTrendDetector(priceHistoryRepo repository.PriceHistoryRepository, logger logger.Logger) *TrendDetector {
	return &TrendDetector{
		priceHistoryRepo: priceHistoryRepo,
		logger:           logger,
	}
}

// CheckTrend computes the trend over the lookback window (hours);
// lookbackHours <= 0 means the full history. Fewer than two observations
// yields TrendInsufficientData, which is an outcome, not an error.
//
// The detector trusts the store's ascending timestamp ordering and never
// re-sorts; a disordered feed should surface upstream, not be hidden here.
func (d *TrendDetector) CheckTrend(ctx context.Context, origin, destination string, lookbackHours int) (*entity.TrendResult, error) {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	var since time.Time
	if lookbackHours > 0 {
		since = time.Now().Add(-time.Duration(lookbackHours) * time.Hour)
	}

	observations, err := d.priceHistoryRepo.ListByRoute(ctx, origin, destination, since)
	if err != nil {
		return nil, err
	}

	if len(observations) < 2 {
		return &entity.TrendResult{
			Direction: entity.TrendInsufficientData,
			Samples:   len(observations),
		}, nil
	}

	first := observations[0]
	last := observations[len(observations)-1]
	delta := last.Price - first.Price

	direction := entity.TrendStable
	if delta < 0 {
		direction = entity.TrendFalling
	} else if delta > 0 {
		direction = entity.TrendRising
	}

	return &entity.TrendResult{
		Direction:    direction,
		Change:       math.Abs(delta),
		LastObserved: last.Timestamp,
		Samples:      len(observations),
	}, nil
}
