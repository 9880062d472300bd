package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axes.
var (
	XAxis = r3.Vec{X: 1}
	YAxis = r3.Vec{Y: 1}
	ZAxis = r3.Vec{Z: 1}
)

type translated struct {
	child  Solid
	offset r3.Vec
	bounds Bounds
}

// Translate moves s by (x, y, z). Nested translations collapse.
func Translate(s Solid, x, y, z float64) Solid {
	return TranslateVec(s, r3.Vec{X: x, Y: y, Z: z})
}

// TranslateVec moves s by v.
func TranslateVec(s Solid, v r3.Vec) Solid {
	if s == nil {
		return Empty()
	}
	if v == (r3.Vec{}) {
		return s
	}
	switch c := s.(type) {
	case empty:
		return c
	case *translated:
		return TranslateVec(c.child, r3.Add(c.offset, v))
	}
	return &translated{child: s, offset: v, bounds: s.Bounds().Translate(v)}
}

func (t *translated) Distance(p r3.Vec) float64 { return t.child.Distance(r3.Sub(p, t.offset)) }
func (t *translated) Bounds() Bounds             { return t.bounds }

type rotated struct {
	child   Solid
	origin  r3.Vec
	inverse r3.Rotation
	bounds  Bounds
}

// Rotate turns s by degrees about axis through the origin, right-hand rule.
func Rotate(s Solid, axis r3.Vec, degrees float64) Solid {
	return RotateAbout(s, r3.Vec{}, axis, degrees)
}

// RotateAbout turns s by degrees about the line through origin along axis.
func RotateAbout(s Solid, origin, axis r3.Vec, degrees float64) Solid {
	if s == nil {
		return Empty()
	}
	if _, ok := s.(empty); ok || math.Mod(degrees, 360) == 0 {
		return s
	}
	axis = r3.Unit(axis)
	alpha := degrees * math.Pi / 180
	fwd := r3.NewRotation(alpha, axis)

	b := EmptyBounds()
	if cb := s.Bounds(); !cb.Empty() {
		for _, c := range cb.Corners() {
			q := r3.Add(fwd.Rotate(r3.Sub(c, origin)), origin)
			b = b.Union(Bounds{Min: q, Max: q})
		}
	}
	return &rotated{
		child:   s,
		origin:  origin,
		inverse: r3.NewRotation(-alpha, axis),
		bounds:  b,
	}
}

func (r *rotated) Distance(p r3.Vec) float64 {
	return r.child.Distance(r3.Add(r.inverse.Rotate(r3.Sub(p, r.origin)), r.origin))
}

func (r *rotated) Bounds() Bounds { return r.bounds }

// RotatePoint turns p by degrees about axis through the origin, matching Rotate.
func RotatePoint(p, axis r3.Vec, degrees float64) r3.Vec {
	if math.Mod(degrees, 360) == 0 {
		return p
	}
	return r3.NewRotation(degrees*math.Pi/180, r3.Unit(axis)).Rotate(p)
}
