package charmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexboard/charmap"
)

func TestBounds(t *testing.T) {
	x, y := charmap.Bounds(nil)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	cm := charmap.CharMap{{X: 4, Y: 1}: 'a', {X: 2, Y: 7}: 'b', {X: -3, Y: -3}: 'c'}
	x, y = charmap.Bounds(cm)
	assert.Equal(t, 4, x)
	assert.Equal(t, 7, y)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", charmap.Render(nil))
	assert.Equal(t, "", charmap.Render(charmap.CharMap{}))
	assert.Nil(t, charmap.Lines(charmap.CharMap{}))
}

func TestRender_SingleOrigin(t *testing.T) {
	assert.Equal(t, "x", charmap.Render(charmap.CharMap{{X: 0, Y: 0}: 'x'}))
}

func TestRender_FillsBlanks(t *testing.T) {
	cm := charmap.CharMap{
		{X: 2, Y: 0}: 'a',
		{X: 0, Y: 2}: 'b',
		{X: 1, Y: 1}: '⟨',
	}
	assert.Equal(t, "  a\n ⟨ \nb  ", charmap.Render(cm))
	assert.Equal(t, []string{"  a", " ⟨ ", "b  "}, charmap.Lines(cm))
}

func TestRender_NoTrailingNewline(t *testing.T) {
	cm := charmap.CharMap{{X: 0, Y: 3}: 'z'}
	out := charmap.Render(cm)
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestRender_IgnoresNegativePositions(t *testing.T) {
	cm := charmap.CharMap{{X: -1, Y: 0}: 'n', {X: 1, Y: 0}: 'p'}
	assert.Equal(t, " p", charmap.Render(cm))
}

func TestPos_Add(t *testing.T) {
	assert.Equal(t, charmap.Pos{X: 1, Y: -2}, charmap.Pos{X: 3, Y: 1}.Add(charmap.Pos{X: -2, Y: -3}))
}
