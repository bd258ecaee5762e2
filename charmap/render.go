package charmap

import "strings"

// Bounds returns the largest X and Y present in cm, never below 0.
// Complexity: O(N).
func Bounds(cm CharMap) (maxX, maxY int) {
	for p := range cm {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX, maxY
}

// Lines flattens cm into rows covering (0,0)..Bounds(cm) inclusive.
// Unpopulated cells become Blank and positions with a negative
// coordinate are not emitted. An empty cm yields nil.
// Complexity: O(N + W×H).
func Lines(cm CharMap) []string {
	if len(cm) == 0 {
		return nil
	}
	maxX, maxY := Bounds(cm)
	lines := make([]string, 0, maxY+1)
	var sb strings.Builder
	for y := 0; y <= maxY; y++ {
		sb.Reset()
		sb.Grow(maxX + 1)
		for x := 0; x <= maxX; x++ {
			if r, ok := cm[Pos{X: x, Y: y}]; ok {
				sb.WriteRune(r)
			} else {
				sb.WriteRune(Blank)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Render flattens cm into a single string, rows separated by '\n' and no
// trailing newline. An empty cm renders to "".
func Render(cm CharMap) string {
	return strings.Join(Lines(cm), "\n")
}
