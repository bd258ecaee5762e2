package charmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexboard/charmap"
)

var brackets = charmap.Brackets{Left: '⟨', Right: '⟩'}

func TestBrackets_Strength(t *testing.T) {
	assert.Equal(t, charmap.Empty, brackets.Strength(0, false))
	assert.Equal(t, charmap.Single, brackets.Strength('/', true))
	assert.Equal(t, charmap.Bracket, brackets.Strength('⟨', true))
	assert.Equal(t, charmap.Bracket, brackets.Strength('⟩', true))
	assert.Less(t, charmap.Empty, charmap.Single)
	assert.Less(t, charmap.Single, charmap.Bracket)
}

func TestBrackets_MergeCorner(t *testing.T) {
	cases := []struct {
		name     string
		existing rune
		ok       bool
		want     rune
	}{
		{"EmptyTakesSingle", 0, false, '\\'},
		{"SingleBecomesJoin", '/', true, '⟩'},
		{"SameSingleBecomesJoin", '\\', true, '⟩'},
		{"LeftBracketKept", '⟨', true, '⟨'},
		{"RightBracketKept", '⟩', true, '⟩'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := brackets.MergeCorner(tc.existing, tc.ok, '\\', '⟩')
			assert.Equal(t, tc.want, got)
		})
	}
}

// Two outlines meeting at a corner each propose (single, bracket); the
// final cell must not depend on which proposal lands first.
func TestPropose_OrderIndependent(t *testing.T) {
	p := charmap.Pos{X: 6, Y: 3}

	first := charmap.CharMap{}
	first.Propose(brackets, p, '\\', '⟩')
	first.Propose(brackets, p, '/', '⟩')

	second := charmap.CharMap{}
	second.Propose(brackets, p, '/', '⟩')
	second.Propose(brackets, p, '\\', '⟩')

	assert.Equal(t, '⟩', first[p])
	assert.Equal(t, first, second)
}

func TestPropose_KeepsStaticBracket(t *testing.T) {
	p := charmap.Pos{X: 1, Y: 1}
	cm := charmap.CharMap{p: '⟩'}
	cm.Propose(brackets, p, '/', '⟨')
	assert.Equal(t, '⟩', cm[p])
}
