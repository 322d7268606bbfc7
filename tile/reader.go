package tile

import (
	"bufio"
	"io"
)

const byteOrderMark = '\uFEFF'

// Reader reads tile codes from a text map. Line terminators are not tiles
// and neither is a byte order mark at the start of the input.
type Reader struct {
	r       *bufio.Reader
	started bool
}

// NewReader returns a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
	}
}

// ReadCode returns the code of the next map character. At the end of the
// input it returns io.EOF.
func (r *Reader) ReadCode() (Code, error) {
	for {
		c, _, err := r.r.ReadRune()
		if err != nil {
			return Empty, err
		}

		if !r.started {
			r.started = true
			if c == byteOrderMark {
				continue
			}
		}

		// Covers \n, \r\n and a lone \r
		if c == '\n' || c == '\r' {
			continue
		}

		return FromRune(c), nil
	}
}
