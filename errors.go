package fold

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrInvalidWidth indicates a width that is zero, negative, or not a number.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrConflictingModes indicates more than one measurement mode was requested.
	ErrConflictingModes = errors.New("conflicting measurement modes")

	// ErrMalformedText indicates input that is not valid UTF-8 in a mode
	// that decodes text.
	ErrMalformedText = errors.New("malformed UTF-8 text")
)
