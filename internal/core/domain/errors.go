package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTopic indicates a topic reference that is not in the domain index.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrUnsupportedFormat indicates an export format that is not recognised.
	ErrUnsupportedFormat = errors.New("export format not supported")

	// ErrUnsupportedBackend indicates an unknown record store backend.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)
