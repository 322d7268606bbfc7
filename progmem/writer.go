/*
Package progmem writes packed map data as a C array placed in AVR program
memory, ready to be included in the game firmware.

	const uint8_t mapTiles[] PROGMEM = {
	0x1B,
	0x0F,
	};
*/
package progmem

import (
	"fmt"
	"io"
)

const (
	header = "const uint8_t mapTiles[] PROGMEM = {\n"
	footer = "};\n"
)

// Writer writes one array element per line.
type Writer struct {
	w io.Writer
}

// NewWriter writes the array declaration to w and returns a Writer for the
// elements.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := io.WriteString(w, header); err != nil {
		return nil, err
	}
	return &Writer{w: w}, nil
}

// WriteByte writes b as an uppercase hexadecimal element.
func (w *Writer) WriteByte(b byte) error {
	_, err := fmt.Fprintf(w.w, "0x%02X,\n", b)
	return err
}

// Close terminates the array. It does not close the underlying writer.
func (w *Writer) Close() error {
	_, err := io.WriteString(w.w, footer)
	return err
}
