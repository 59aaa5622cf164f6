// Package uniseg measures lines in bytes, Unicode scalar values, or
// extended grapheme clusters using github.com/rivo/uniseg.
package uniseg

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/fold"
	"github.com/rivo/uniseg"
)

// Interface compliance check.
var _ fold.Segmenter = Segmenter{}

// Segmenter implements fold.Segmenter for one measurement mode.
type Segmenter struct {
	Mode fold.Mode
}

// New returns a Segmenter for mode.
func New(mode fold.Mode) Segmenter {
	return Segmenter{Mode: mode}
}

// Boundaries returns the start offset of every unit in line. In Chars and
// Graphemes mode line must be valid UTF-8; Bytes mode accepts any input.
func (s Segmenter) Boundaries(line []byte) ([]int, error) {
	switch s.Mode {
	case fold.Bytes:
		return byteOffsets(line), nil
	case fold.Chars:
		if !utf8.Valid(line) {
			return nil, fold.ErrMalformedText
		}
		return charOffsets(line), nil
	case fold.Graphemes:
		if !utf8.Valid(line) {
			return nil, fold.ErrMalformedText
		}
		return graphemeOffsets(line), nil
	default:
		return nil, fmt.Errorf("unknown mode %s", s.Mode)
	}
}

func byteOffsets(line []byte) []int {
	offsets := make([]int, len(line))
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}

func charOffsets(line []byte) []int {
	offsets := make([]int, 0, utf8.RuneCount(line))
	for i := 0; i < len(line); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRune(line[i:])
		i += size
	}
	return offsets
}

func graphemeOffsets(line []byte) []int {
	var offsets []int
	state := -1
	pos := 0
	rest := line
	for len(rest) > 0 {
		offsets = append(offsets, pos)
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		pos += len(cluster)
	}
	return offsets
}
