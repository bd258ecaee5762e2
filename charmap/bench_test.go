package charmap_test

import (
	"testing"

	"github.com/katalvlaran/hexboard/charmap"
)

// BenchmarkRender flattens a half-populated 200×60 grid.
func BenchmarkRender(b *testing.B) {
	cm := charmap.CharMap{}
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x += 2 {
			cm[charmap.Pos{X: x, Y: y}] = '#'
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = charmap.Render(cm)
	}
}
