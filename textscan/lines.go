package textscan

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Lines returns an iterator over the lines of r.
//
// Each yielded line retains its terminator except possibly the last line of
// input. Lines grow to any length; there is no fixed buffer cap. If reading
// fails mid-stream, the final yield carries the error with an empty line.
//
// The sequence is finite and single-use: it consumes r and cannot be
// restarted.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)

		for {
			line, err := br.ReadString('\n')

			if line != "" {
				if !yield(line, nil) {
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}

				return
			}
		}
	}
}
