package catalog

import "errors"

var (
	// ErrNotFound is returned when a product id matches no stored row.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidInput is returned on unrecognized method keys and rejected
	// uploads. The wrapped message carries the human readable reason.
	ErrInvalidInput = errors.New("invalid input")
)
