package port

import "errors"

var (
	// ErrNotFound is returned when a record with the requested key does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned when a status is outside its closed set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidSettings is returned when a settings document fails validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
