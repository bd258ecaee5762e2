package board

import (
	"github.com/katalvlaran/hexboard/charmap"
	"github.com/katalvlaran/hexboard/hex"
)

// GlyphSet lists the runes an outline is drawn with.
type GlyphSet struct {
	Left       rune // closes a hexagon on its left
	Right      rune // closes a hexagon on its right
	Horizontal rune // top and bottom borders
	Slash      rune // upper-left and lower-right corners
	Backslash  rune // upper-right and lower-left corners
}

var (
	// UnicodeGlyphs draws outlines with mathematical angle brackets.
	UnicodeGlyphs = GlyphSet{Left: '⟨', Right: '⟩', Horizontal: '-', Slash: '/', Backslash: '\\'}
	// ASCIIGlyphs draws outlines with plain ASCII only.
	ASCIIGlyphs = GlyphSet{Left: '<', Right: '>', Horizontal: '-', Slash: '/', Backslash: '\\'}
)

// Brackets returns the bracket pair used for corner resolution.
func (g GlyphSet) Brackets() charmap.Brackets {
	return charmap.Brackets{Left: g.Left, Right: g.Right}
}

// Pair is one coordinate and its payload.
type Pair[T any] struct {
	Coord hex.Coord
	Value T
}

// Board owns a set of hexagon payloads keyed by axial coordinate.
// The zero value is an empty board ready to use. A Board is not safe for
// concurrent mutation.
type Board[T any] struct {
	values map[hex.Coord]T
}

// staticCell is a footprint cell whose glyph never depends on neighbours.
type staticCell struct {
	offset charmap.Pos
	glyph  func(GlyphSet) rune
}

// cornerCell is a footprint corner: single when alone, multiple when shared.
type cornerCell struct {
	offset   charmap.Pos
	single   func(GlyphSet) rune
	multiple func(GlyphSet) rune
}

func horizontal(g GlyphSet) rune { return g.Horizontal }
func left(g GlyphSet) rune { return g.Left }
func right(g GlyphSet) rune { return g.Right }
func slash(g GlyphSet) rune { return g.Slash }
func backslash(g GlyphSet) rune { return g.Backslash }

// staticCells are the borders and side brackets around a centre.
var staticCells = [8]staticCell{
	{charmap.Pos{X: -1, Y: 1}, horizontal},
	{charmap.Pos{X: 0, Y: 1}, horizontal},
	{charmap.Pos{X: 1, Y: 1}, horizontal},
	{charmap.Pos{X: -3, Y: 0}, left},
	{charmap.Pos{X: 3, Y: 0}, right},
	{charmap.Pos{X: -1, Y: -1}, horizontal},
	{charmap.Pos{X: 0, Y: -1}, horizontal},
	{charmap.Pos{X: 1, Y: -1}, horizontal},
}

// cornerCells are the four diagonals; a shared lower-left corner closes the
// hexagon to its left, hence a right bracket, and so on.
var cornerCells = [4]cornerCell{
	{charmap.Pos{X: -2, Y: 1}, backslash, right},
	{charmap.Pos{X: 2, Y: 1}, slash, left},
	{charmap.Pos{X: -2, Y: -1}, slash, right},
	{charmap.Pos{X: 2, Y: -1}, backslash, left},
}
