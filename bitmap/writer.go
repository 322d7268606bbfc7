package bitmap

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/bodgit/maptools/tile"
	"github.com/ericpauley/go-quantize/quantize"
)

var errEmpty = errors.New("bitmap: empty image")

// tileTable maps every possible palette index to a tile. Indices past the
// end of the palette are empty tiles.
type tileTable [256]tile.Code

func newTileTable(p color.Palette) *tileTable {
	t := new(tileTable)
	for i, c := range p {
		if i >= len(t) {
			break
		}
		t[i] = tile.Code(Palette.Index(c))
	}
	return t
}

type encoder struct {
	w     *bufio.Writer
	tiles *tileTable
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, err := e.w.WriteRune(e.tiles[m.ColorIndexAt(x, y)].Rune()); err != nil {
				return err
			}
		}
		if err := e.w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// reduce quantizes m to no more colors than there are tiles, so shading and
// compression artifacts don't scatter pixels across tiles.
func reduce(m image.Image) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	b := m.Bounds()
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, numColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Encode writes the Image m to w as a text map, one line per row of pixels.
// Paletted images with no more than four colors are matched against the tile
// colors directly, anything else is reduced to four colors first.
func Encode(w io.Writer, m image.Image) error {
	if m.Bounds().Empty() {
		return errEmpty
	}

	pm, ok := m.(*image.Paletted)
	if !ok || len(pm.Palette) > numColors {
		pm = reduce(m)
	}

	e := encoder{
		w:     bufio.NewWriter(w),
		tiles: newTileTable(pm.Palette),
	}

	return e.encode(pm)
}
