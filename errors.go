package databar

import "errors"

var (
	// ErrInvalidValue is returned when the value to encode is malformed:
	// wrong length, bad characters, bad check digit, bad AI element string
	// or too much data for the variant.
	ErrInvalidValue = errors.New("invalid value")

	// ErrWriter is returned when no writer is registered for a variant.
	ErrWriter = errors.New("writer error")

	// ErrInvariant marks an internal consistency failure while assembling a
	// symbol. It is raised with panic, never returned.
	ErrInvariant = errors.New("encoding invariant violated")
)
