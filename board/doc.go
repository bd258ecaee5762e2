// Package board stores hexagon payloads by axial coordinate and draws them
// as a text picture of touching hexagon outlines.
//
// What:
//
//   - Board[T] owns a map from hex.Coord to T; inserting an existing
//     coordinate replaces its value (last write wins).
//   - CharMap places every hexagon on a charmap.CharMap: the payload glyph at
//     the centre, "---" above and below, brackets on both sides and four
//     diagonal corners that merge into a bracket where two outlines meet.
//   - Render flattens that grid into text via charmap.Render.
//   - Parse reads such text back into a Board[rune], up to translation.
//
// A single hexagon at (0,0) holding 'a' renders as:
//
//	 /---\
//	⟨  a  ⟩
//	 \---/
//
// Transform:
//
// A coordinate (q, r) is centred at x = -5q + 5r, y = -q - r, then shifted
// once for the whole board by (5·max(q-r) + 3, max(q+r) + 1), so the leftmost
// bracket lands in column 0 and the topmost border in row 0. Only relative
// positions matter: translating every coordinate leaves the text unchanged.
//
// Options:
//
//   - WithGlyphs(GlyphSet): choose brackets and strokes; UnicodeGlyphs is the
//     default and ASCIIGlyphs uses '<' and '>'.
//
// Errors:
//
//   - ErrMalformed: Parse found a hexagon off the 5-column lattice.
//
// The glyph function passed to CharMap and Render must be total; a panic
// inside it reaches the caller unchanged.
//
// Complexity:
//
//   - CharMap: O(N) for N hexagons, 17 writes each.
//   - Render:  O(N + W×H).
//   - Parse:   O(W×H).
package board
