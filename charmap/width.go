package charmap

import (
	"slices"

	"golang.org/x/text/width"
)

// WideCells returns the positions whose rune is East Asian Wide or
// Fullwidth, sorted row-major. Such runes take two terminal columns and
// shift everything to their right on the same row.
func WideCells(cm CharMap) []Pos {
	var wide []Pos
	for p, r := range cm {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			wide = append(wide, p)
		}
	}
	slices.SortFunc(wide, ComparePos)
	return wide
}
