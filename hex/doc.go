// Package hex provides axial hexagon coordinates for boards drawn as text.
//
// What:
//
//   - Coord is an axial (Q, R) pair with structural equality, so it can key a map.
//   - Directions lists the six edge-sharing neighbour offsets.
//   - Distance, Ring and Disk work in the same basis the renderer uses.
//   - Components groups a coordinate set into connected islands.
//
// Basis:
//
// Moving +1 along Q shifts one hexagon left-and-up, +1 along R shifts one
// hexagon right-and-up, so (1,1) sits directly above (0,0). The six
// neighbours of (0,0) are therefore ±(1,0), ±(0,1) and ±(1,1); (1,-1) is
// two steps away even though it shares a text row with (0,0).
//
//	      (1,1)
//	(1,0)       (0,1)
//	      (0,0)
//	(0,-1)      (-1,0)
//	     (-1,-1)
//
// Complexity:
//
//   - Distance:   O(1).
//   - Ring:       O(k), Disk: O(r²).
//   - Components: O(N) for N coordinates, plus O(N log N) for ordering.
package hex
