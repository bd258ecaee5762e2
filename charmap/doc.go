// Package charmap holds sparse character grids and flattens them into text.
//
// What:
//
//   - CharMap maps a cartesian Pos (x right, y down) to a single rune.
//   - Render emits the dense rectangle (0,0)..(maxX,maxY), filling gaps with
//     spaces, rows joined by '\n' with no trailing newline.
//   - Brackets.MergeCorner resolves competing corner glyphs between
//     neighbouring outlines using the order empty < single < bracket.
//   - WideCells reports runes that occupy two terminal columns.
//
// The flattener is generic: any CharMap works, not just one produced by the
// board package.
//
// Complexity:
//
//   - Bounds:    O(N) over populated cells.
//   - Render:    O(N + W×H) time, O(W×H) memory for the output string.
//   - WideCells: O(N log N).
package charmap
