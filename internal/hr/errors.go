package hr

import "errors"

// Sentinel errors shared by the store, search, matching and scheduling
// packages. Callers classify failures with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuery    = errors.New("invalid query")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidType     = errors.New("invalid interview type")
	ErrConflict        = errors.New("scheduling conflict")
)
