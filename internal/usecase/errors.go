package usecase

import (
	"errors"
	"fmt"
)

// ErrNoBaseline means there is no historical data for the requested
// (origin, destination, lead-time) key. It is a normal outcome callers
// branch on, not a failure; a zero-width band (min == avg) is still data.
var ErrNoBaseline = errors.New("no baseline for route and lead time")

// ValidationError reports malformed caller input. Nothing is written to
// storage when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
