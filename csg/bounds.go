package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned bounding box. Min > Max on any axis means empty.
type Bounds struct {
	Min, Max r3.Vec
}

// EmptyBounds returns the identity element for Union.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoundsOf returns the bounds of a box with the given size centered at c.
func BoundsOf(c, size r3.Vec) Bounds {
	h := r3.Scale(0.5, size)
	return Bounds{Min: r3.Sub(c, h), Max: r3.Add(c, h)}
}

// Empty reports whether b encloses no volume.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent along each axis.
func (b Bounds) Size() r3.Vec {
	if b.Empty() {
		return r3.Vec{}
	}
	return r3.Sub(b.Max, b.Min)
}

// Center returns the midpoint of b.
func (b Bounds) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Union returns the smallest bounds enclosing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Bounds{
		Min: r3.Vec{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: r3.Vec{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Intersect returns the overlap of b and o (possibly empty).
func (b Bounds) Intersect(o Bounds) Bounds {
	return Bounds{
		Min: r3.Vec{X: math.Max(b.Min.X, o.Min.X), Y: math.Max(b.Min.Y, o.Min.Y), Z: math.Max(b.Min.Z, o.Min.Z)},
		Max: r3.Vec{X: math.Min(b.Max.X, o.Max.X), Y: math.Min(b.Max.Y, o.Max.Y), Z: math.Min(b.Max.Z, o.Max.Z)},
	}
}

// Translate shifts b by v.
func (b Bounds) Translate(v r3.Vec) Bounds {
	if b.Empty() {
		return b
	}
	return Bounds{Min: r3.Add(b.Min, v), Max: r3.Add(b.Max, v)}
}

// Expand grows b by d on every side.
func (b Bounds) Expand(d float64) Bounds {
	if b.Empty() {
		return b
	}
	e := r3.Vec{X: d, Y: d, Z: d}
	return Bounds{Min: r3.Sub(b.Min, e), Max: r3.Add(b.Max, e)}
}

// Contains reports whether p lies inside b (inclusive).
func (b Bounds) Contains(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight corner points of b.
func (b Bounds) Corners() [8]r3.Vec {
	var out [8]r3.Vec
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out[i] = c
	}
	return out
}

// distance is the exact box distance from p to b. It is a lower bound for
// the distance to any solid enclosed by b.
func (b Bounds) distance(p r3.Vec) float64 {
	if b.Empty() {
		return math.Inf(1)
	}
	c := b.Center()
	h := r3.Scale(0.5, b.Size())
	q := r3.Vec{X: math.Abs(p.X-c.X) - h.X, Y: math.Abs(p.Y-c.Y) - h.Y, Z: math.Abs(p.Z-c.Z) - h.Z}
	outside := r3.Norm(r3.Vec{X: math.Max(q.X, 0), Y: math.Max(q.Y, 0), Z: math.Max(q.Z, 0)})
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside + inside
}
