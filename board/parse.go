package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/hexboard/charmap"
	"github.com/katalvlaran/hexboard/hex"
)

// FromText loads text into a CharMap, one rune per cell, lines split on '\n'.
// Blank cells are left out.
func FromText(text string) charmap.CharMap {
	cm := charmap.CharMap{}
	for y, line := range strings.Split(text, "\n") {
		x := 0
		for _, r := range line {
			if r != charmap.Blank {
				cm[charmap.Pos{X: x, Y: y}] = r
			}
			x++
		}
	}
	return cm
}

// Parse reads a drawing produced by Render back into a Board[rune].
// See Decode for how hexagons are recognized and placed.
func Parse(text string, opts ...Option) (*Board[rune], error) {
	return Decode(FromText(text), opts...)
}

// Decode recognizes hexagons in cm and returns their centre runes.
//
// A hexagon is a left bracket, two blanks, a non-blank centre, two blanks
// and a right bracket on one row. Drawings carry no absolute position, so the
// first centre in row-major order becomes (0,0) and the rest are placed
// relative to it; rendering the result reproduces the drawing. A centre that
// renders as Blank cannot be told apart from an enclosed gap and is skipped.
//
// Returns ErrMalformed when a centre is not on the hexagon lattice
// relative to the first one.
func Decode(cm charmap.CharMap, opts ...Option) (*Board[rune], error) {
	g := newConfig(opts).glyphs

	var centers []charmap.Pos
	for p, r := range cm {
		if r != g.Left || cm[p.Add(charmap.Pos{X: 6})] != g.Right {
			continue
		}
		center := p.Add(charmap.Pos{X: 3})
		if blank(cm, center) {
			continue
		}
		if !blank(cm, p.Add(charmap.Pos{X: 1})) || !blank(cm, p.Add(charmap.Pos{X: 2})) ||
			!blank(cm, p.Add(charmap.Pos{X: 4})) || !blank(cm, p.Add(charmap.Pos{X: 5})) {
			continue
		}
		centers = append(centers, center)
	}

	b := New[rune]()
	if len(centers) == 0 {
		return b, nil
	}
	slices.SortFunc(centers, charmap.ComparePos)

	anchor := centers[0]
	for _, p := range centers {
		c, err := axial(p.X-anchor.X, p.Y-anchor.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: centre at column %d row %d", err, p.X, p.Y)
		}
		b.Set(c, cm[p])
	}
	return b, nil
}

// axial inverts Cartesian for a centre offset (dx, dy).
func axial(dx, dy int) (hex.Coord, error) {
	if dx%5 != 0 {
		return hex.Coord{}, ErrMalformed
	}
	diff := dx / 5 // r - q
	sum := -dy     // q + r
	if (diff+sum)%2 != 0 {
		return hex.Coord{}, ErrMalformed
	}
	return hex.Coord{Q: (sum - diff) / 2, R: (sum + diff) / 2}, nil
}

func blank(cm charmap.CharMap, p charmap.Pos) bool {
	r, ok := cm[p]
	return !ok || r == charmap.Blank
}
