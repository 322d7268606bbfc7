/*
Package bitmap renders images as text maps.

Every pixel becomes one map character. Pixels are matched to the nearest of
the colors the game uses to draw the tile backgrounds, so a screenshot of the
game, or a sketch painted in those colors, turns back into a map that can be
edited and converted.
*/
package bitmap

import (
	"image/color"

	"github.com/bodgit/maptools/tile"
)

// Palette holds the tile background colors, indexed by tile.Code.
var Palette = color.Palette{
	tile.Empty: color.RGBA{0x00, 0x00, 0x00, 0xff},
	tile.Stone: color.RGBA{0x3a, 0x3a, 0x3a, 0xff},
	tile.Water: color.RGBA{0x00, 0x5f, 0xff, 0xff},
	tile.Grass: color.RGBA{0x00, 0xaf, 0x00, 0xff},
}

const numColors = 4
