/*
Package tile implements the 2-bit tile codes used by the map data and the
packing of those codes four to a byte.

A map is authored as plain text where each character is one tile. Only three
characters are significant; everything else is an empty tile:

	#	stone
	~	water
	.	grass

Within a packed byte the first tile occupies bits 0-1, the second bits 2-3,
and so on.
*/
package tile

const (
	bitsPerTile  = 2
	tilesPerByte = 8 / bitsPerTile
	codeMask     = 1<<bitsPerTile - 1
)

// Code is a 2-bit tile value.
type Code byte

// Tile codes as understood by the game firmware.
const (
	Empty Code = iota
	Stone
	Water
	Grass
)

// FromRune returns the tile code for the map character r. Unknown
// characters are empty tiles.
func FromRune(r rune) Code {
	switch r {
	case '#':
		return Stone
	case '~':
		return Water
	case '.':
		return Grass
	default:
		return Empty
	}
}

// Rune returns the map character used to author c.
func (c Code) Rune() rune {
	switch c & codeMask {
	case Stone:
		return '#'
	case Water:
		return '~'
	case Grass:
		return '.'
	default:
		return ' '
	}
}
