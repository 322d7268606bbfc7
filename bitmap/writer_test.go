package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/maptools/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	for i, c := range Palette {
		assert.Equal(t, i, Palette.Index(c))
	}
}

func TestEncodePaletted(t *testing.T) {
	rows := [][]tile.Code{
		{tile.Stone, tile.Water, tile.Grass, tile.Stone},
		{tile.Empty, tile.Grass, tile.Grass, tile.Empty},
	}

	m := image.NewPaletted(image.Rect(0, 0, 4, 2), Palette)
	for y, row := range rows {
		for x, c := range row {
			m.SetColorIndex(x, y, uint8(c))
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "#~.#\n .. \n", b.String())
}

func TestEncodeNearestColor(t *testing.T) {
	p := color.Palette{
		color.RGBA{0x40, 0x40, 0x40, 0xff},
		color.RGBA{0x10, 0xc0, 0x10, 0xff},
	}

	m := image.NewPaletted(image.Rect(0, 0, 3, 1), p)
	m.SetColorIndex(0, 0, 0)
	m.SetColorIndex(1, 0, 1)
	m.SetColorIndex(2, 0, 0)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "#.#\n", b.String())
}

func TestEncodeOffsetBounds(t *testing.T) {
	m := image.NewPaletted(image.Rect(10, 10, 12, 11), Palette)
	m.SetColorIndex(10, 10, uint8(tile.Water))
	m.SetColorIndex(11, 10, uint8(tile.Stone))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "~#\n", b.String())
}

func TestEncodeQuantized(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, color.RGBA{0x02, 0x60, 0xf0, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "~~~~\n~~~~\n~~~~\n", b.String())
}

func TestEncodeIndexOutsidePalette(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 3, 1), Palette[:2])
	m.SetColorIndex(0, 0, uint8(tile.Stone))
	m.SetColorIndex(1, 0, 7)
	m.SetColorIndex(2, 0, 255)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, "#  \n", b.String())
}

func TestEncodeEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	assert.Equal(t, errEmpty, Encode(b, image.NewRGBA(image.Rectangle{})))
	assert.Zero(t, b.Len())
}
