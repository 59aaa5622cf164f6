package fold

import "fmt"

// Mode selects the unit that width is measured in.
type Mode int

const (
	// Graphemes counts user-perceived characters (UAX #29 extended grapheme
	// clusters). It is the default.
	Graphemes Mode = iota
	// Chars counts Unicode scalar values.
	Chars
	// Bytes counts raw bytes. Folding in this mode can split a multi-byte
	// UTF-8 sequence and produce invalid output.
	Bytes
)

func (m Mode) String() string {
	switch m {
	case Graphemes:
		return "graphemes"
	case Chars:
		return "chars"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModeFromFlags resolves the mode selected by the bytes and chars switches.
// Neither set selects Graphemes; both set is an error.
func ModeFromFlags(bytes, chars bool) (Mode, error) {
	switch {
	case bytes && chars:
		return 0, fmt.Errorf("bytes and chars are mutually exclusive: %w", ErrConflictingModes)
	case bytes:
		return Bytes, nil
	case chars:
		return Chars, nil
	default:
		return Graphemes, nil
	}
}
