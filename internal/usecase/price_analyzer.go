package usecase

import (
	"context"
	"errors"
	"strings"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"
)

// stealMargin is the multiplier over the historical minimum that closes the
// steal zone: steal = [min, min*1.10]
const stealMargin = 1.10

// PriceAnalyzer computes negotiation bands from baseline statistics
type PriceAnalyzer struct {
	baselineRepo repository.BaselineRepository
	logger       logger.Logger
}

// NewPriceAnalyzer creates a new price analyzer
func NewPriceAnalyzer(baselineRepo repository.BaselineRepository, logger logger.Logger) *PriceAnalyzer {
	return &PriceAnalyzer{
		baselineRepo: baselineRepo,
		logger:       logger,
	}
}

// AnalyzeBands returns the steal/fair/rip-off bands for the exact
// (origin, destination, daysLeft) key. Bands are derived from the stored
// min/avg every call and never cached. Returns ErrNoBaseline when the key
// has no history.
func (a *PriceAnalyzer) AnalyzeBands(ctx context.Context, origin, destination string, daysLeft int) (*entity.PriceBands, error) {
	if daysLeft < 0 {
		return nil, &ValidationError{Field: "daysLeft", Reason: "must not be negative"}
	}
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	stat, err := a.baselineRepo.GetByKey(ctx, origin, destination, daysLeft)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoBaseline
		}
		return nil, err
	}

	return &entity.PriceBands{
		Origin:      stat.Origin,
		Destination: stat.Destination,
		DaysLeft:    stat.DaysLeft,
		StealLow:    stat.MinPrice,
		StealHigh:   stat.MinPrice * stealMargin,
		FairHigh:    stat.AvgPrice,
		Average:     stat.AvgPrice,
	}, nil
}

// ClassifyPrice places a candidate price into one of the zones for the key.
// The zone set includes below-steal for prices under the historical minimum.
func (a *PriceAnalyzer) ClassifyPrice(ctx context.Context, origin, destination string, daysLeft int, price float64) (entity.PriceZone, *entity.PriceBands, error) {
	if price <= 0 {
		return "", nil, &ValidationError{Field: "price", Reason: "must be positive"}
	}

	bands, err := a.AnalyzeBands(ctx, origin, destination, daysLeft)
	if err != nil {
		return "", nil, err
	}
	return bands.Classify(price), bands, nil
}
