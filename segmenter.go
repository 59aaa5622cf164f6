package fold

// Segmenter splits one line into countable units.
//
// Boundaries returns the byte offset at which each unit starts, in strictly
// increasing order. The first offset of a non-empty line is 0; an empty line
// has no offsets. Implementations must not retain line.
type Segmenter interface {
	Boundaries(line []byte) ([]int, error)
}
