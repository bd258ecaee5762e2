// Package generate builds procedural rune boards for demos and benchmarks.
//
// What:
//
//   - Disk fills every hexagon within a radius with a glyph picked from a
//     palette by layered simplex noise, so neighbouring hexagons tend to share
//     glyphs and the board reads like terrain.
//
// Determinism:
//
//   - A fixed Config.Seed always yields the same board; Seed 0 draws a
//     random seed.
//
// Errors:
//
//   - ErrNegativeRadius: Config.Radius < 0.
//   - ErrEmptyPalette:   Config.Palette has no runes.
//   - ErrBadOctaves:     Config.Octaves < 1.
package generate
