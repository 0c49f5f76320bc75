package domain

import "errors"

// Sentinel errors shared across layers. Services wrap storage and model
// failures with these so the delivery layer can map them to status codes
// with errors.Is.
var (
	// ErrInvalidInput indicates a malformed or missing question/argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a lookup target is absent. Optional results
	// ("no upcoming events") are empty values, not this error.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable indicates the record store could not be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrModelService indicates the hosted model failed or returned an
	// unusable response.
	ErrModelService = errors.New("model service error")

	// ErrTimeout indicates a bounded wait was exceeded.
	ErrTimeout = errors.New("timeout")
)
