package repository

import "errors"

// ErrNotFound is returned when a lookup key has no row. Callers branch on it
// with errors.Is; it is a normal outcome, distinct from store unavailability.
var ErrNotFound = errors.New("record not found")
