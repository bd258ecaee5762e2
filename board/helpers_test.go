package board_test

import (
	"strings"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/hex"
)

// lines joins rows the way Render does; trailing blanks stay visible.
func lines(rows ...string) string {
	return strings.Join(rows, "\n")
}

func pair(q, r int, v rune) board.Pair[rune] {
	return board.Pair[rune]{Coord: hex.Coord{Q: q, R: r}, Value: v}
}

// fourBoard is the reference layout: a, b up-left, c up-right, d below.
func fourBoard() *board.Board[rune] {
	return board.FromPairs(pair(0, 0, 'a'), pair(1, 0, 'b'), pair(0, 1, 'c'), pair(-1, -1, 'd'))
}

var fourText = lines(
	` /---\     /---\ `,
	`⟨  b  ⟩---⟨  c  ⟩`,
	` \---⟨  a  ⟩---/ `,
	`      ⟩---⟨      `,
	`     ⟨  d  ⟩     `,
	`      \---/      `,
)
