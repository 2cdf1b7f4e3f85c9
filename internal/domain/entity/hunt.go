package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Hunt represents a user's standing watch on a route, travel date and target price
type Hunt struct {
	ID              uint
	Origin          string
	Destination     string
	TravelDate      time.Time
	FlexibilityDays int
	IsFlexible      bool
	TargetPrice     float64
	UserWhatsapp    string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt
}

// Route returns the route label, e.g. "BLR->DEL"
func (h *Hunt) Route() string {
	return fmt.Sprintf("%s->%s", h.Origin, h.Destination)
}

// ModeLabel returns a human-readable watch mode
func (h *Hunt) ModeLabel() string {
	if h.FlexibilityDays > 0 {
		return fmt.Sprintf("+/- %d days", h.FlexibilityDays)
	}
	return "Exact Date (Sniper)"
}

// WindowStart returns the earliest acceptable travel date.
// Flexible hunts are a single range predicate, never expanded into per-day rows.
func (h *Hunt) WindowStart() time.Time {
	return h.TravelDate.AddDate(0, 0, -h.FlexibilityDays)
}

// WindowEnd returns the latest acceptable travel date
func (h *Hunt) WindowEnd() time.Time {
	return h.TravelDate.AddDate(0, 0, h.FlexibilityDays)
}
