package charmap

import "cmp"

// Pos is one character cell; X grows rightward and Y grows downward.
type Pos struct {
	X, Y int
}

// ComparePos orders positions row-major: by Y, then X.
func ComparePos(a, b Pos) int {
	if a.Y != b.Y {
		return cmp.Compare(a.Y, b.Y)
	}
	return cmp.Compare(a.X, b.X)
}

// Add returns p+o.
func (p Pos) Add(o Pos) Pos { return Pos{X: p.X + o.X, Y: p.Y + o.Y} }

// CharMap is a sparse character grid. Later writes to a Pos replace earlier ones.
type CharMap map[Pos]rune

// Blank fills positions missing from a CharMap when it is flattened.
const Blank = ' '
