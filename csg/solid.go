package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is an immutable volume given by a signed distance function.
type Solid interface {
	// Distance is negative inside, zero on the surface, positive outside.
	Distance(p r3.Vec) float64
	// Bounds encloses every point where Distance is negative.
	Bounds() Bounds
}

// Inside reports whether p lies strictly inside s.
func Inside(s Solid, p r3.Vec) bool {
	return s.Distance(p) < 0
}

// IsEmpty reports whether s is nil or has empty bounds.
func IsEmpty(s Solid) bool {
	return s == nil || s.Bounds().Empty()
}

type empty struct{}

// Empty returns the solid containing no points.
func Empty() Solid { return empty{} }

func (empty) Distance(r3.Vec) float64 { return math.Inf(1) }
func (empty) Bounds() Bounds          { return EmptyBounds() }
