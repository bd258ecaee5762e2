package hex

import "cmp"

// Coord is an axial hexagon coordinate.
type Coord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Directions defines the six edge-sharing neighbour offsets,
// in on-screen clockwise order starting at the upper-left neighbour.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: 1},
	{Q: 0, R: 1},
	{Q: -1, R: 0},
	{Q: -1, R: -1},
	{Q: 0, R: -1},
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord { return Coord{Q: c.Q + o.Q, R: c.R + o.R} }

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord { return Coord{Q: c.Q - o.Q, R: c.R - o.R} }

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord { return Coord{Q: c.Q * k, R: c.R * k} }

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Add(d)
	}
	return result
}

// Compare orders coordinates by R, then Q. It returns -1, 0 or +1.
func Compare(a, b Coord) int {
	if n := cmp.Compare(a.R, b.R); n != 0 {
		return n
	}
	return cmp.Compare(a.Q, b.Q)
}

// Distance returns the number of neighbour steps between a and b.
// Steps along (1,1) move both components at once, so equal-signed
// deltas cost their maximum and opposite-signed deltas their sum.
func Distance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	if (dq >= 0) == (dr >= 0) {
		return max(abs(dq), abs(dr))
	}
	return abs(dq) + abs(dr)
}

// Ring returns the coordinates at exactly distance k from c, starting below
// c and walking clockwise on screen. Ring(c, 0) returns [c]; negative k returns nil.
func Ring(c Coord, k int) []Coord {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Coord{c}
	}
	res := make([]Coord, 0, 6*k)
	cur := c.Add(Directions[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns every coordinate within distance r of c, ordered by Q then R.
// Negative r returns nil.
func Disk(c Coord, r int) []Coord {
	if r < 0 {
		return nil
	}
	res := make([]Coord, 0, 1+3*r*(r+1))
	for q := -r; q <= r; q++ {
		for r2 := max(-r, q-r); r2 <= min(r, q+r); r2++ {
			res = append(res, c.Add(Coord{Q: q, R: r2}))
		}
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
