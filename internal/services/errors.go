package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Handlers map these with
// errors.Is: ErrValidation -> 400, ErrNotFound -> 404, everything else -> 500.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUpstream    = errors.New("upstream AI call failed")
	ErrPersistence = errors.New("persistence failed")
)
