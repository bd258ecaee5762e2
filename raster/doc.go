// Package raster draws a charmap.CharMap onto a grayscale bitmap, one fixed
// font cell per grid position, so a board can be exported as an image.
//
// Options:
//
//   - WithFace(font.Face): monospace face; default basicfont.Face7x13.
//   - WithPadding(px): blank margin around the grid; default 2.
//   - WithFallback(map[rune]rune): runes replaced before drawing; the default
//     maps the Unicode angle brackets to '<' and '>' since basic faces lack them.
//
// Runes the face lacks are drawn with its U+FFFD replacement glyph.
package raster
