package journal

import "errors"

// Common journal errors.
var (
	// ErrAlreadyRegistered is returned when a stream is registered for a
	// (collection, graph) key that already has a live entry.
	ErrAlreadyRegistered = errors.New("graph stream already registered")

	// ErrNotRegistered is returned when an operation targets a
	// (collection, graph) key with no live entry.
	ErrNotRegistered = errors.New("graph stream not registered")

	// ErrUnimplementedFormat is returned for operations against a
	// placeholder format kind.
	ErrUnimplementedFormat = errors.New("journal format not implemented")

	// ErrEncoding is returned when an object value matches no recognized
	// literal shape.
	ErrEncoding = errors.New("object value has no recognized encoding")
)
