package usecase

import (
	"context"
	"fmt"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"
	"skyhunt-service/pkg/utils"
)

// FareSource supplies raw historical fare records for aggregation
type FareSource interface {
	ReadAll(ctx context.Context) ([]entity.HistoricalFareRecord, error)
}

// CityMap maps free-form dataset city names to IATA-style route codes.
// Records whose city is absent from the map are dropped, never fatal.
type CityMap map[string]string

// DefaultCityMap covers the cities present in the Kaggle fare dataset
var DefaultCityMap = CityMap{
	"Delhi":     "DEL",
	"Mumbai":    "BOM",
	"Bangalore": "BLR",
	"Hyderabad": "HYD",
	"Kolkata":   "CCU",
	"Chennai":   "MAA",
}

// BuildReport summarizes one baseline build run
type BuildReport struct {
	RecordsRead int
	Skipped     int
	Groups      int
	Inserted    int64
}

// BaselineBuilder reduces the historical fare dataset into per-route,
// per-lead-time min/avg/max statistics
type BaselineBuilder struct {
	source       FareSource
	baselineRepo repository.BaselineRepository
	cityMap      CityMap
	logger       logger.Logger
}

// NewBaselineBuilder creates a new baseline builder
func NewBaselineBuilder(source FareSource, baselineRepo repository.BaselineRepository, cityMap CityMap, logger logger.Logger) *BaselineBuilder {
	if cityMap == nil {
		cityMap = DefaultCityMap
	}
	return &BaselineBuilder{
		source:       source,
		baselineRepo: baselineRepo,
		cityMap:      cityMap,
		logger:       logger,
	}
}

type groupKey struct {
	origin      string
	destination string
	daysLeft    int
}

type groupAgg struct {
	min   float64
	max   float64
	sum   float64
	count int
}

// Build reads the fare source, groups records by (origin, destination,
// lead-time) and writes one BaselineStat per group with insert-or-ignore
// semantics, so previously computed keys are never overwritten. An
// unreadable source is fatal and writes nothing; individual bad records are
// skipped and counted.
func (b *BaselineBuilder) Build(ctx context.Context) (*BuildReport, error) {
	records, err := b.source.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read fare source: %w", err)
	}

	report := &BuildReport{RecordsRead: len(records)}
	groups := make(map[groupKey]*groupAgg)

	for _, rec := range records {
		origin, ok := b.cityMap[rec.SourceCity]
		if !ok {
			report.Skipped++
			continue
		}
		destination, ok := b.cityMap[rec.DestinationCity]
		if !ok {
			report.Skipped++
			continue
		}
		if rec.DaysLeft < 0 || rec.Price <= 0 {
			report.Skipped++
			continue
		}

		key := groupKey{origin: origin, destination: destination, daysLeft: rec.DaysLeft}
		agg, exists := groups[key]
		if !exists {
			groups[key] = &groupAgg{min: rec.Price, max: rec.Price, sum: rec.Price, count: 1}
			continue
		}
		if rec.Price < agg.min {
			agg.min = rec.Price
		}
		if rec.Price > agg.max {
			agg.max = rec.Price
		}
		agg.sum += rec.Price
		agg.count++
	}

	stats := make([]entity.BaselineStat, 0, len(groups))
	for key, agg := range groups {
		stats = append(stats, entity.BaselineStat{
			Origin:      key.origin,
			Destination: key.destination,
			DaysLeft:    key.daysLeft,
			MinPrice:    agg.min,
			AvgPrice:    utils.Round2(agg.sum / float64(agg.count)),
			MaxPrice:    agg.max,
		})
	}
	report.Groups = len(stats)

	inserted, err := b.baselineRepo.InsertIgnore(ctx, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to store baselines: %w", err)
	}
	report.Inserted = inserted

	b.logger.Info("Baseline build complete",
		"recordsRead", report.RecordsRead,
		"skipped", report.Skipped,
		"groups", report.Groups,
		"inserted", report.Inserted)

	return report, nil
}
