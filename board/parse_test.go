package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/charmap"
	"github.com/katalvlaran/hexboard/hex"
)

func TestFromText(t *testing.T) {
	cm := board.FromText("a b\n ⟨")
	assert.Equal(t, charmap.CharMap{
		{X: 0, Y: 0}: 'a',
		{X: 2, Y: 0}: 'b',
		{X: 1, Y: 1}: '⟨',
	}, cm)
}

func TestParse_Four(t *testing.T) {
	b, err := board.Parse(fourText)
	require.NoError(t, err)

	// first centre in reading order is 'b', which becomes the anchor
	assert.Equal(t, map[hex.Coord]rune{
		{Q: 0, R: 0}:   'b',
		{Q: -1, R: 0}:  'a',
		{Q: -1, R: 1}:  'c',
		{Q: -2, R: -1}: 'd',
	}, b.Values())
}

func TestParse_RoundTrip(t *testing.T) {
	boards := []*board.Board[rune]{
		board.FromPairs(pair(0, 0, 'a')),
		fourBoard(),
		board.FromPairs(pair(1, 1, 't'), pair(-1, -1, 'b')),
		board.FromPairs(pair(0, 0, 'a'), pair(1, -1, 'b'), pair(3, 3, '⟨')),
	}
	disk := board.New[rune]()
	for i, c := range hex.Disk(hex.Coord{Q: 5, R: 2}, 3) {
		disk.Set(c, rune('A'+i%26))
	}
	boards = append(boards, disk)

	for _, b := range boards {
		text := board.Runes(b)
		parsed, err := board.Parse(text)
		require.NoError(t, err)
		assert.Equal(t, b.Len(), parsed.Len())
		assert.Equal(t, text, board.Runes(parsed))
	}
}

func TestParse_ASCII(t *testing.T) {
	opt := board.WithGlyphs(board.ASCIIGlyphs)
	text := board.Runes(fourBoard(), opt)

	parsed, err := board.Parse(text, opt)
	require.NoError(t, err)
	assert.Equal(t, 4, parsed.Len())

	// unicode brackets are not expected in an ASCII drawing
	none, err := board.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
}

// A centre drawn as Blank looks like an enclosed gap, so it is not read back.
func TestParse_BlankCentreSkipped(t *testing.T) {
	b := board.FromPairs(pair(0, 0, ' '), pair(1, 0, 'b'))
	text := board.Runes(b)

	parsed, err := board.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, map[hex.Coord]rune{{Q: 0, R: 0}: 'b'}, parsed.Values())

	alone, err := board.Parse(board.Runes(board.FromPairs(pair(0, 0, ' '))))
	require.NoError(t, err)
	assert.Equal(t, 0, alone.Len())
}

func TestParse_Empty(t *testing.T) {
	b, err := board.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"OffColumnLattice", "⟨  a  ⟩ ⟨  b  ⟩"},
		{"OffParity", lines("⟨  a  ⟩", "", "     ⟨  b  ⟩")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Parse(tc.text)
			assert.ErrorIs(t, err, board.ErrMalformed)
		})
	}
}
