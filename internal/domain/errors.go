package domain

import "errors"

// Common domain errors. Repositories translate driver-level failures into
// these sentinels so usecases never see raw pgx errors.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
	// ErrInvalidTransition is returned when a guarded status write finds
	// the record no longer in the expected state.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
