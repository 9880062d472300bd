package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Compound is an ordered union whose members stay addressable.
type Compound struct {
	members []Solid
	bounds  Bounds
}

// NewCompound returns the union of members in the given order. Nil and empty
// members are dropped.
func NewCompound(members ...Solid) *Compound {
	c := &Compound{bounds: EmptyBounds()}
	for _, m := range members {
		if IsEmpty(m) {
			continue
		}
		c.members = append(c.members, m)
		c.bounds = c.bounds.Union(m.Bounds())
	}
	return c
}

// Members returns the members in insertion order.
func (c *Compound) Members() []Solid { return append([]Solid(nil), c.members...) }

// Len returns the number of members.
func (c *Compound) Len() int { return len(c.members) }

// Distance is the minimum member distance. Members whose bounds miss p
// contribute their bounds distance, which keeps the sign.
func (c *Compound) Distance(p r3.Vec) float64 {
	d := math.Inf(1)
	for _, m := range c.members {
		b := m.Bounds()
		if !b.Contains(p) {
			if bd := b.distance(p); bd < d {
				d = bd
			}
			continue
		}
		if md := m.Distance(p); md < d {
			d = md
		}
	}
	return d
}

// Bounds encloses all members.
func (c *Compound) Bounds() Bounds { return c.bounds }

// Union combines solids. It returns Empty for no members and the member
// itself for one.
func Union(members ...Solid) Solid {
	c := NewCompound(members...)
	switch len(c.members) {
	case 0:
		return Empty()
	case 1:
		return c.members[0]
	}
	return c
}

type difference struct {
	base  Solid
	tools []Solid
}

// Cut removes every tool from base.
func Cut(base Solid, tools ...Solid) Solid {
	if IsEmpty(base) {
		return Empty()
	}
	bb := base.Bounds()
	var keep []Solid
	for _, t := range tools {
		if IsEmpty(t) || t.Bounds().Intersect(bb).Empty() {
			continue
		}
		keep = append(keep, t)
	}
	if len(keep) == 0 {
		return base
	}
	return &difference{base: base, tools: keep}
}

func (d *difference) Distance(p r3.Vec) float64 {
	v := d.base.Distance(p)
	for _, t := range d.tools {
		if !t.Bounds().Contains(p) {
			continue
		}
		v = math.Max(v, -t.Distance(p))
	}
	return v
}

func (d *difference) Bounds() Bounds { return d.base.Bounds() }

type intersection struct {
	a, b   Solid
	bounds Bounds
}

// Intersect keeps the volume shared by a and b.
func Intersect(a, b Solid) Solid {
	if IsEmpty(a) || IsEmpty(b) {
		return Empty()
	}
	ib := a.Bounds().Intersect(b.Bounds())
	if ib.Empty() {
		return Empty()
	}
	return &intersection{a: a, b: b, bounds: ib}
}

func (i *intersection) Distance(p r3.Vec) float64 {
	return math.Max(i.a.Distance(p), i.b.Distance(p))
}

func (i *intersection) Bounds() Bounds { return i.bounds }
