package stl

import "sort"

// faceNeighbors are the six face-adjacent cell offsets. Cells that touch
// only along an edge or a corner do not hold a print together.
var faceNeighbors = [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

// islands returns the cell count of every face-connected group of filled
// cells, largest first.
// Time: O(cells). Memory: O(cells) for the visited flags and queue.
func (g *grid) islands() []int {
	seen := make([]bool, len(g.occ))
	var sizes []int
	var queue [][3]int

	var c [3]int
	for c[2] = 0; c[2] < g.n[2]; c[2]++ {
		for c[1] = 0; c[1] < g.n[1]; c[1]++ {
			for c[0] = 0; c[0] < g.n[0]; c[0]++ {
				i0 := g.index(c)
				if !g.occ[i0] || seen[i0] {
					continue
				}
				seen[i0] = true
				queue = append(queue[:0], c)
				for qi := 0; qi < len(queue); qi++ {
					u := queue[qi]
					for _, d := range faceNeighbors {
						v := [3]int{u[0] + d[0], u[1] + d[1], u[2] + d[2]}
						if !g.filled(v) {
							continue
						}
						if vi := g.index(v); !seen[vi] {
							seen[vi] = true
							queue = append(queue, v)
						}
					}
				}
				sizes = append(sizes, len(queue))
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
