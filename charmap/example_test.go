package charmap_test

import (
	"fmt"

	"github.com/katalvlaran/hexboard/charmap"
)

// ExampleRender flattens a hand-built grid; gaps become spaces.
func ExampleRender() {
	cm := charmap.CharMap{
		{X: 0, Y: 0}: '+',
		{X: 4, Y: 0}: '+',
		{X: 0, Y: 1}: '|',
		{X: 2, Y: 1}: 'o',
		{X: 4, Y: 1}: '|',
		{X: 0, Y: 2}: '+',
		{X: 4, Y: 2}: '+',
	}
	fmt.Println(charmap.Render(cm))
	// Output:
	// +   +
	// | o |
	// +   +
}
