package fold

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Folder reads lines from a stream and writes them folded.
type Folder struct {
	segmenter Segmenter
	width     Width
}

// NewFolder creates a Folder that measures lines with segmenter and breaks
// them at width units.
func NewFolder(segmenter Segmenter, width Width) *Folder {
	return &Folder{segmenter: segmenter, width: width}
}

// Option configures a single Fold invocation.
type Option func(*foldConfig)

type foldConfig struct {
	splitOnSpace bool
}

// WithSplitOnSpace makes Fold break after the last whitespace before the
// width limit when there is one, instead of exactly at the limit.
func WithSplitOnSpace(split bool) Option {
	return func(c *foldConfig) {
		c.splitOnSpace = split
	}
}

// Fold copies r to w one line at a time, folding each line. Lines end at
// "\n" or "\r\n"; the terminator is replaced by "\n" on output, and a final
// line without one gets one. Output is flushed after every input line, so
// Fold holds at most one line in memory and suits unbounded input.
//
// Write errors are returned unwrapped. Segmentation errors are wrapped with
// the 1-based line number.
func (f *Folder) Fold(r io.Reader, w io.Writer, opts ...Option) error {
	var cfg foldConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for n := 1; ; n++ {
		line, err := br.ReadBytes('\n')
		if len(line) == 0 && errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line = trimTerminator(line)

		offsets, serr := f.segmenter.Boundaries(line)
		if serr != nil {
			return fmt.Errorf("line %d: %w", n, serr)
		}
		if werr := WriteLine(bw, line, offsets, f.width, cfg.splitOnSpace); werr != nil {
			return werr
		}
		if ferr := bw.Flush(); ferr != nil {
			return ferr
		}
		if err != nil {
			// EOF after a final unterminated line.
			return nil
		}
	}
}

// trimTerminator strips "\n" or "\r\n". A lone trailing "\r" is content.
func trimTerminator(line []byte) []byte {
	line, ok := bytes.CutSuffix(line, []byte{'\n'})
	if !ok {
		return line
	}
	return bytes.TrimSuffix(line, []byte{'\r'})
}
