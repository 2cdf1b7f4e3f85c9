package entity

import "time"

// HistoricalFareRecord is one raw sample from the historical fare dataset.
// Cities are free-form names that still need mapping to route codes.
type HistoricalFareRecord struct {
	SourceCity      string
	DestinationCity string
	DaysLeft        int
	Price           float64
}

// BaselineStat holds the aggregated fare statistics for one
// (origin, destination, lead-time) key. Once written it is read-only;
// min <= avg <= max always holds and avg is rounded to 2 decimals.
type BaselineStat struct {
	ID          uint
	Origin      string
	Destination string
	DaysLeft    int
	MinPrice    float64
	AvgPrice    float64
	MaxPrice    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
