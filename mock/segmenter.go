package mock

import "github.com/fwojciec/fold"

// Interface compliance check.
var _ fold.Segmenter = (*Segmenter)(nil)

// Segmenter is a test double for fold.Segmenter.
// Set BoundariesFn before calling Boundaries.
type Segmenter struct {
	BoundariesFn func(line []byte) ([]int, error)
}

// Boundaries delegates to BoundariesFn.
func (s *Segmenter) Boundaries(line []byte) ([]int, error) {
	return s.BoundariesFn(line)
}
