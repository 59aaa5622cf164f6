// Package fold breaks lines of text so that no output line is wider than a
// fixed number of units, optionally preferring to break after whitespace.
//
// The root package holds the domain types and the folding algorithm, which is
// pure and performs no I/O beyond the writer it is handed. Segmentation of a
// line into units lives in the uniseg package.
package fold

import "io"

// Line folds one line into segments of at most width units each, where
// offsets are the unit start offsets produced by a Segmenter for line.
//
// The segments are subslices of line and always concatenate back to line.
// A line of width or fewer units yields a single segment; an empty line
// yields one empty segment.
func Line(line []byte, offsets []int, width Width, splitOnSpace bool) [][]byte {
	var segments [][]byte
	_ = foldLine(line, offsets, width, splitOnSpace, func(seg []byte) error {
		segments = append(segments, seg)
		return nil
	})
	return segments
}

// WriteLine folds line like Line and writes each segment to w followed by a
// newline. The first write error aborts the line and is returned unchanged.
func WriteLine(w io.Writer, line []byte, offsets []int, width Width, splitOnSpace bool) error {
	return foldLine(line, offsets, width, splitOnSpace, func(seg []byte) error {
		if _, err := w.Write(seg); err != nil {
			return err
		}
		_, err := w.Write(newline)
		return err
	})
}

var newline = []byte{'\n'}

// foldLine is a single greedy pass. The break check for the unit starting at
// end happens before that unit is counted, so a line is never broken while the
// unit would still fit.
func foldLine(line []byte, offsets []int, width Width, splitOnSpace bool, emit func([]byte) error) error {
	var (
		start         int
		n             int // units in the current segment
		lastWordWidth int // units in the trailing non-whitespace run
	)
	for _, end := range offsets {
		if n == int(width) {
			n = 0
			lineEnd := end
			if splitOnSpace {
				if i := lastSpace(line[start:end]); i >= 0 {
					lineEnd = start + i + 1
					// The partial word moves whole to the next segment.
					n = lastWordWidth
				}
			}
			if err := emit(line[start:lineEnd]); err != nil {
				return err
			}
			start = lineEnd
		}
		n++
		if isSpace(line[end]) {
			lastWordWidth = 0
		} else {
			lastWordWidth++
		}
	}
	return emit(line[start:])
}

func lastSpace(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if isSpace(b[i]) {
			return i
		}
	}
	return -1
}

// isSpace reports ASCII whitespace: space, tab, line feed, form feed and
// carriage return. Vertical tab is not included.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
