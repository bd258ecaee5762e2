package board

import (
	"maps"
	"slices"

	"github.com/katalvlaran/hexboard/hex"
)

// New returns an empty board.
func New[T any]() *Board[T] {
	return &Board[T]{values: make(map[hex.Coord]T)}
}

// FromPairs builds a board from pairs; a repeated coordinate keeps the
// value of its last pair.
func FromPairs[T any](pairs ...Pair[T]) *Board[T] {
	b := &Board[T]{values: make(map[hex.Coord]T, len(pairs))}
	for _, p := range pairs {
		b.values[p.Coord] = p.Value
	}
	return b
}

// FromMap builds a board holding a copy of m.
func FromMap[T any](m map[hex.Coord]T) *Board[T] {
	return &Board[T]{values: maps.Clone(m)}
}

// Set stores v at c, replacing any previous value.
func (b *Board[T]) Set(c hex.Coord, v T) {
	if b.values == nil {
		b.values = make(map[hex.Coord]T)
	}
	b.values[c] = v
}

// Get returns the value at c and whether one is present.
func (b *Board[T]) Get(c hex.Coord) (T, bool) {
	v, ok := b.values[c]
	return v, ok
}

// Delete removes c from the board. Missing coordinates are ignored.
func (b *Board[T]) Delete(c hex.Coord) {
	delete(b.values, c)
}

// Len returns the number of occupied hexagons.
func (b *Board[T]) Len() int {
	return len(b.values)
}

// Coords returns the occupied coordinates ordered with hex.Compare.
func (b *Board[T]) Coords() []hex.Coord {
	return slices.SortedFunc(maps.Keys(b.values), hex.Compare)
}

// Values returns a copy of the coordinate to value mapping.
func (b *Board[T]) Values() map[hex.Coord]T {
	out := maps.Clone(b.values)
	if out == nil {
		out = make(map[hex.Coord]T)
	}
	return out
}

// Islands groups the occupied coordinates into edge-connected islands.
// See hex.Components for ordering.
func (b *Board[T]) Islands() [][]hex.Coord {
	return hex.Components(b.Coords())
}
