package hex

import "slices"

// Components finds all contiguous islands of the given coordinates,
// where two coordinates are connected when they are neighbours.
// Duplicates are ignored. Each island is sorted with Compare and islands
// are ordered by their first member, so the result is deterministic.
//
// Time:   O(N·6 + N log N).
// Memory: O(N) for the membership set and output.
func Components(coords []Coord) [][]Coord {
	if len(coords) == 0 {
		return nil
	}
	present := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		present[c] = true
	}
	ordered := make([]Coord, 0, len(present))
	for c := range present {
		ordered = append(ordered, c)
	}
	slices.SortFunc(ordered, Compare)

	seen := make(map[Coord]bool, len(present))
	var comps [][]Coord
	for _, start := range ordered {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []Coord{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].Neighbors() {
				if present[n] && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		slices.SortFunc(queue, Compare)
		comps = append(comps, queue)
	}
	return comps
}
