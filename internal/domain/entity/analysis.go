package entity

import "time"

// PriceZone classifies a candidate price against the baseline bands
type PriceZone string

const (
	ZoneBelowSteal PriceZone = "below_steal"
	ZoneSteal      PriceZone = "steal"
	ZoneFair       PriceZone = "fair"
	ZoneRipOff     PriceZone = "rip_off"
)

// PriceBands holds the negotiation zones derived from a baseline:
// steal [StealLow, StealHigh], fair (StealHigh, FairHigh], rip-off (FairHigh, inf).
type PriceBands struct {
	Origin      string
	Destination string
	DaysLeft    int
	StealLow    float64
	StealHigh   float64
	FairHigh    float64
	Average     float64
}

// Classify places a price into exactly one zone. Prices under the historical
// minimum are below-steal, not steal.
func (b *PriceBands) Classify(price float64) PriceZone {
	switch {
	case price < b.StealLow:
		return ZoneBelowSteal
	case price <= b.StealHigh:
		return ZoneSteal
	case price <= b.FairHigh:
		return ZoneFair
	default:
		return ZoneRipOff
	}
}

// TrendDirection is the market momentum for a route
type TrendDirection string

const (
	TrendRising           TrendDirection = "RISING"
	TrendFalling          TrendDirection = "FALLING"
	TrendStable           TrendDirection = "STABLE"
	TrendInsufficientData TrendDirection = "INSUFFICIENT_DATA"
)

// TrendResult is the outcome of a market trend check. When fewer than two
// observations exist Direction is TrendInsufficientData and the other fields
// are zero.
type TrendResult struct {
	Direction    TrendDirection
	Change       float64
	LastObserved time.Time
	Samples      int
}
