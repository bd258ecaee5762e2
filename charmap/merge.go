package charmap

// Strength ranks what a cell holds when outlines compete for it.
// Corner resolution only ever moves a cell up this order.
type Strength int

const (
	// Empty means nothing has been written.
	Empty Strength = iota
	// Single is a lone diagonal drawn by one outline.
	Single
	// Bracket is a left or right bracket, final for corner resolution.
	Bracket
)

// Brackets names the two glyphs that close a hexagon on its left and right.
type Brackets struct {
	Left, Right rune
}

// Has reports whether r is one of the two brackets.
func (b Brackets) Has(r rune) bool {
	return r == b.Left || r == b.Right
}

// Strength classifies a cell's content; ok is false for an absent cell.
func (b Brackets) Strength(r rune, ok bool) Strength {
	switch {
	case !ok:
		return Empty
	case b.Has(r):
		return Bracket
	default:
		return Single
	}
}

// MergeCorner resolves a corner proposal (single, multiple) against the
// current cell content: an empty cell takes single, a bracket is kept, and
// any other glyph means a second outline reached the same corner, so the
// joining bracket multiple wins.
func (b Brackets) MergeCorner(existing rune, ok bool, single, multiple rune) rune {
	switch b.Strength(existing, ok) {
	case Empty:
		return single
	case Bracket:
		return existing
	default:
		return multiple
	}
}

// Propose applies MergeCorner at p and stores the result in cm.
func (cm CharMap) Propose(b Brackets, p Pos, single, multiple rune) {
	cur, ok := cm[p]
	cm[p] = b.MergeCorner(cur, ok, single, multiple)
}
