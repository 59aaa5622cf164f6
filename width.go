package fold

import (
	"fmt"
	"strconv"
)

// DefaultWidth is the width used when none is given.
const DefaultWidth Width = 80

// Width is the maximum number of units on one output line. Always positive.
type Width int

// NewWidth validates n as a Width.
func NewWidth(n int) (Width, error) {
	if n <= 0 {
		return 0, fmt.Errorf("width must be positive, got %d: %w", n, ErrInvalidWidth)
	}
	return Width(n), nil
}

// ParseWidth parses a decimal width such as the value of a command-line flag.
func ParseWidth(s string) (Width, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number of columns: '%s': %w", s, ErrInvalidWidth)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid number of columns: '%s': %w", s, ErrInvalidWidth)
	}
	return Width(n), nil
}
