package board

import (
	"github.com/katalvlaran/hexboard/charmap"
	"github.com/katalvlaran/hexboard/hex"
)

// Cartesian maps an axial coordinate to its un-normalized centre cell.
// The basis is q → (-5,-1) and r → (5,-1).
func Cartesian(c hex.Coord) charmap.Pos {
	return charmap.Pos{X: -5*c.Q + 5*c.R, Y: -c.Q - c.R}
}

// Origin returns the shift that puts every outline of coords at
// non-negative cells with the leftmost bracket in column 0 and the
// topmost border in row 0. Empty input yields the shift of a lone (0,0).
func Origin(coords []hex.Coord) charmap.Pos {
	if len(coords) == 0 {
		return charmap.Pos{X: 3, Y: 1}
	}
	maxX, maxY := coords[0].Q-coords[0].R, coords[0].Q+coords[0].R
	for _, c := range coords[1:] {
		maxX = max(maxX, c.Q-c.R)
		maxY = max(maxY, c.Q+c.R)
	}
	return charmap.Pos{X: 5*maxX + 3, Y: maxY + 1}
}

// Center returns the centre cell of c after shifting by origin.
func Center(c hex.Coord, origin charmap.Pos) charmap.Pos {
	return Cartesian(c).Add(origin)
}

// CharMap draws every hexagon of b onto a fresh sparse grid, using glyph to
// turn each payload into its centre rune. The origin is computed once for
// the whole board. Corners go through charmap.Brackets.MergeCorner, so the
// result does not depend on map iteration order.
// Panics if glyph is nil.
func (b *Board[T]) CharMap(glyph func(T) rune, opts ...Option) charmap.CharMap {
	if glyph == nil {
		panic("board: CharMap with nil glyph function")
	}
	cfg := newConfig(opts)
	g := cfg.glyphs
	brackets := g.Brackets()

	out := make(charmap.CharMap, len(b.values)*(1+len(staticCells)+len(cornerCells)))
	if len(b.values) == 0 {
		return out
	}
	origin := Origin(b.Coords())

	for c, v := range b.values {
		center := Center(c, origin)
		out[center] = glyph(v)
		for _, s := range staticCells {
			out[center.Add(s.offset)] = s.glyph(g)
		}
		for _, k := range cornerCells {
			out.Propose(brackets, center.Add(k.offset), k.single(g), k.multiple(g))
		}
	}

	return out
}

// Render draws b and flattens it into text. An empty board renders to "".
func (b *Board[T]) Render(glyph func(T) rune, opts ...Option) string {
	return charmap.Render(b.CharMap(glyph, opts...))
}

// Identity is the glyph function for boards that already hold runes.
func Identity(r rune) rune { return r }

// Runes renders a board of runes.
func Runes(b *Board[rune], opts ...Option) string {
	return b.Render(Identity, opts...)
}
