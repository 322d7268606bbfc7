/*
Package maptools is a library for turning text maps into the packed tile
data embedded in the game firmware.
*/
package maptools

import (
	"image"
	_ "image/gif" // register decoders for Import
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/bodgit/maptools/bitmap"
	"github.com/bodgit/maptools/progmem"
	"github.com/bodgit/maptools/tile"
)

type MapTools struct {
	logger *log.Logger
}

func New(logger *log.Logger) *MapTools {
	return &MapTools{
		logger: logger,
	}
}

// Convert reads the text map in file and writes it to w as a PROGMEM array,
// four tiles to a byte. Tiles at the end of the map that don't fill a whole
// byte are dropped.
func (m *MapTools) Convert(w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return &FileAccessError{Path: file, Err: err}
	}
	defer f.Close()

	r := tile.NewReader(f)

	// Read ahead before writing anything, so an unreadable file such as a
	// directory leaves no output behind
	c, rerr := r.ReadCode()
	if rerr != nil && rerr != io.EOF {
		return &FileAccessError{Path: file, Err: rerr}
	}

	pw, err := progmem.NewWriter(w)
	if err != nil {
		return err
	}

	var (
		p      tile.Packer
		tiles  int
		packed int
	)

	for ; rerr != io.EOF; c, rerr = r.ReadCode() {
		if rerr != nil {
			return &FileAccessError{Path: file, Err: rerr}
		}
		tiles++

		if b, ok := p.Add(c); ok {
			if err := pw.WriteByte(b); err != nil {
				return err
			}
			packed++
		}
	}

	if n := p.Pending(); n > 0 {
		m.logger.Printf("Dropped %d trailing tile(s) from \"%s\", map size is not a multiple of 4\n", n, file)
	}
	m.logger.Printf("Packed %d tile(s) from \"%s\" into %d byte(s)\n", tiles, file, packed)

	return pw.Close()
}

// Import decodes the image in file and writes it to w as a text map.
func (m *MapTools) Import(w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return &FileAccessError{Path: file, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return err
	}

	b := img.Bounds()
	m.logger.Printf("Importing %dx%d %s image \"%s\"\n", b.Dx(), b.Dy(), format, file)
	if b.Dx()*b.Dy()%4 != 0 {
		m.logger.Printf("Size of \"%s\" is not a multiple of 4 tiles, trailing tiles will be dropped when converted\n", file)
	}

	return bitmap.Encode(w, img)
}
