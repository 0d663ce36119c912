package models

import "errors"

// Error taxonomy shared by repositories, services and handlers. Services wrap
// these with context via fmt.Errorf("...: %w", err); handlers classify with
// errors.Is and map to HTTP status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
)
