package entity

import (
	"time"
)

// PriceObservation is one timestamped price sample for a route. Observations
// are keyed by route, shared by every hunt on that route, and append-only.
type PriceObservation struct {
	ID          string    `bson:"_id,omitempty"`
	Origin      string    `bson:"origin"`
	Destination string    `bson:"destination"`
	Price       float64   `bson:"price"`
	Timestamp   time.Time `bson:"timestamp"`
	CreatedAt   time.Time `bson:"createdAt"`
}
