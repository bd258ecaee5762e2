// Package hexboard draws sparse boards of hexagonal cells as fixed-width
// terminal text.
//
// What:
//
//	Clients map axial hexagon coordinates to payloads and supply a function
//	turning each payload into one rune. The library places every hexagon on
//	a character grid, draws its outline, merges the corners two outlines
//	share, and flattens the grid into lines of text:
//
//	 /---\     /---\
//	⟨  b  ⟩---⟨  c  ⟩
//	 \---⟨  a  ⟩---/
//	      ⟩---⟨
//	     ⟨  d  ⟩
//	      \---/
//
// Packages:
//
//	hex/      — axial coordinates, distances, rings, disks, islands
//	charmap/  — sparse character grid, corner merging, text flattening
//	board/    — Board[T], the coordinate mapper, Render and Parse
//	generate/ — noise-driven demo boards
//	raster/   — bitmap export of a character grid
//
// The hexboard command (cmd/hexboard) renders YAML board documents,
// generates demo boards and parses drawings back into documents.
//
//	go install github.com/katalvlaran/hexboard/cmd/hexboard@latest
package hexboard
