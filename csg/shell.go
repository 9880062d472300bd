package csg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
)

const methodShell = "Shell"

// shellSamples are the downward sample offsets, in wall thicknesses, used to
// carry the hollow through the top face.
var shellSamples = []float64{0, 0.5, 1}

type shelled struct {
	child     Solid
	thickness float64
}

// Shell hollows s to the given wall thickness and leaves the top face open.
// The thickness must be positive and smaller than half the smallest extent.
func Shell(s Solid, thickness float64) (Solid, error) {
	if IsEmpty(s) {
		return nil, fmt.Errorf("%s: %w", methodShell, ErrEmptySolid)
	}
	sz := s.Bounds().Size()
	limit := math.Min(sz.X, math.Min(sz.Y, sz.Z)) / 2
	if thickness <= 0 || thickness >= limit {
		return nil, fmt.Errorf("%s: thickness %g outside (0, %g): %w",
			methodShell, thickness, limit, terrain.ErrInvalidGeometryParameter)
	}
	return &shelled{child: s, thickness: thickness}, nil
}

func (s *shelled) Distance(p r3.Vec) float64 {
	outer := s.child.Distance(p)
	if outer > 0 {
		return outer
	}
	// Cavity: the solid eroded by the wall thickness, swept upward so that it
	// breaks through the top.
	cavity := math.Inf(1)
	for _, k := range shellSamples {
		q := r3.Vec{X: p.X, Y: p.Y, Z: p.Z - k*s.thickness}
		cavity = math.Min(cavity, s.child.Distance(q)+s.thickness)
	}
	return math.Max(outer, -cavity)
}

func (s *shelled) Bounds() Bounds { return s.child.Bounds() }
