// SPDX-License-Identifier: MIT
// Package: terrain/stl
//
// mesh.go - voxel boundary mesher.
//
// Contract:
//   • The grid is centered on the solid's bounds and covers them fully.
//   • Facets are emitted in cell order (x fastest, then y, then z) and face
//     order -X +X -Y +Y -Z +Z, so equal inputs give byte-equal files.
//   • Every facet's vertices wind counter-clockwise seen from outside.
//
// Complexity: O(cells) distance evaluations, O(cells) memory.

package stl

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/internal/monitoring"
)

const methodMesh = "Mesh"

// Facet is one triangle with its outward unit normal.
type Facet struct {
	Normal r3.Vec
	Vertex [3]r3.Vec
}

// grid is the sampled occupancy of a solid, x fastest.
type grid struct {
	origin r3.Vec
	cell   float64
	n      [3]int
	occ    []bool
}

// Report is a meshed solid and what the grid showed about it.
type Report struct {
	Facets []Facet
	Cells  [3]int // grid size along X, Y, Z
	Filled int    // occupied cells
	// Islands holds the cell count of every face-connected part, largest
	// first. More than one means the solid prints as separate pieces.
	Islands []int
}

// Mesh samples s on a cubic grid and returns the boundary facets.
func Mesh(s csg.Solid, opts ...Option) ([]Facet, error) {
	r, err := MeshReport(s, opts...)
	if err != nil {
		return nil, err
	}
	return r.Facets, nil
}

// MeshReport is Mesh plus the grid statistics.
func MeshReport(s csg.Solid, opts ...Option) (*Report, error) {
	cfg := newConfig(opts)
	if csg.IsEmpty(s) {
		return nil, fmt.Errorf("%s: %w", methodMesh, ErrEmptySolid)
	}
	start := time.Now()
	g, err := newGrid(s.Bounds(), cfg)
	if err != nil {
		return nil, err
	}
	g.sample(s)
	r := &Report{Facets: g.facets(), Cells: g.n, Islands: g.islands()}
	for _, n := range r.Islands {
		r.Filled += n
	}
	monitoring.Logf("stl: %d×%d×%d cells at %gmm, %d facets, %d islands in %s",
		g.n[0], g.n[1], g.n[2], g.cell, len(r.Facets), len(r.Islands), time.Since(start))
	return r, nil
}

func newGrid(b csg.Bounds, cfg config) (*grid, error) {
	size, center := b.Size(), b.Center()
	g := &grid{cell: cfg.resolution}
	total := 1.0
	for a := 0; a < 3; a++ {
		n := math.Max(1, math.Ceil(axis(size, a)/g.cell-1e-9))
		total *= n
		if total > float64(cfg.maxCells) {
			return nil, fmt.Errorf("%s: %g mm cells over %v: %w", methodMesh, g.cell, size, ErrTooManyCells)
		}
		g.n[a] = int(n)
	}
	half := r3.Vec{X: float64(g.n[0]), Y: float64(g.n[1]), Z: float64(g.n[2])}
	g.origin = r3.Sub(center, r3.Scale(g.cell/2, half))
	g.occ = make([]bool, g.n[0]*g.n[1]*g.n[2])
	return g, nil
}

func (g *grid) index(c [3]int) int { return (c[2]*g.n[1]+c[1])*g.n[0] + c[0] }

// filled reports occupancy; cells off the grid are empty.
func (g *grid) filled(c [3]int) bool {
	for a := 0; a < 3; a++ {
		if c[a] < 0 || c[a] >= g.n[a] {
			return false
		}
	}
	return g.occ[g.index(c)]
}

// corner is the minimum corner of cell c.
func (g *grid) corner(c [3]int) r3.Vec {
	return r3.Add(g.origin, r3.Vec{
		X: float64(c[0]) * g.cell,
		Y: float64(c[1]) * g.cell,
		Z: float64(c[2]) * g.cell,
	})
}

func (g *grid) sample(s csg.Solid) {
	mid := r3.Vec{X: g.cell / 2, Y: g.cell / 2, Z: g.cell / 2}
	var c [3]int
	for c[2] = 0; c[2] < g.n[2]; c[2]++ {
		for c[1] = 0; c[1] < g.n[1]; c[1]++ {
			for c[0] = 0; c[0] < g.n[0]; c[0]++ {
				g.occ[g.index(c)] = csg.Inside(s, r3.Add(g.corner(c), mid))
			}
		}
	}
}

func (g *grid) facets() []Facet {
	var out []Facet
	var c [3]int
	for c[2] = 0; c[2] < g.n[2]; c[2]++ {
		for c[1] = 0; c[1] < g.n[1]; c[1]++ {
			for c[0] = 0; c[0] < g.n[0]; c[0]++ {
				if !g.occ[g.index(c)] {
					continue
				}
				for a := 0; a < 3; a++ {
					for _, sign := range [2]int{-1, 1} {
						nb := c
						nb[a] += sign
						if !g.filled(nb) {
							out = append(out, g.face(c, a, sign)...)
						}
					}
				}
			}
		}
	}
	return out
}

// face returns the two triangles of cell c's face normal to axis a on the
// sign side.
func (g *grid) face(c [3]int, a, sign int) []Facet {
	u, v := (a+1)%3, (a+2)%3
	base := g.corner(c)
	if sign > 0 {
		base = r3.Add(base, unit(a, g.cell))
	}
	p0 := base
	p1 := r3.Add(base, unit(u, g.cell))
	p2 := r3.Add(p1, unit(v, g.cell))
	p3 := r3.Add(base, unit(v, g.cell))
	n := unit(a, float64(sign))
	if sign > 0 {
		return []Facet{{n, [3]r3.Vec{p0, p1, p2}}, {n, [3]r3.Vec{p0, p2, p3}}}
	}
	return []Facet{{n, [3]r3.Vec{p0, p3, p2}}, {n, [3]r3.Vec{p0, p2, p1}}}
}

func axis(v r3.Vec, a int) float64 {
	switch a {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func unit(a int, d float64) r3.Vec {
	switch a {
	case 0:
		return r3.Vec{X: d}
	case 1:
		return r3.Vec{Y: d}
	}
	return r3.Vec{Z: d}
}
