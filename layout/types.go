package layout

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
)

// countEps absorbs float noise in floor(span/pitch).
const countEps = 1e-9

// Unit is the template tiled by a row: a solid plus its extent along the
// placement axis and the padding that follows it.
type Unit struct {
	Solid   csg.Solid
	Length  float64
	Padding float64
}

// Pitch is Length + Padding, the span each copy consumes when counting.
func (u Unit) Pitch() float64 { return u.Length + u.Padding }

// Side names a side of the footprint.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Member is one placed copy.
type Member struct {
	Index  int    // global index, stable across masks
	Side   Side   // side of the footprint (North for plain rows)
	Slot   int    // position within its row
	Center r3.Vec // placement origin in world coordinates
	Solid  csg.Solid
}

// Placement is an ordered set of members.
type Placement struct {
	members []Member
}

// NewPlacement wraps members as given; indices are not renumbered.
func NewPlacement(members []Member) *Placement {
	return &Placement{members: append([]Member(nil), members...)}
}

// Members returns the members in order.
func (p *Placement) Members() []Member {
	if p == nil {
		return nil
	}
	return append([]Member(nil), p.members...)
}

// Len returns the number of members.
func (p *Placement) Len() int {
	if p == nil {
		return 0
	}
	return len(p.members)
}

// Indices returns the global indices in order.
func (p *Placement) Indices() []int {
	if p == nil {
		return nil
	}
	out := make([]int, len(p.members))
	for i, m := range p.members {
		out[i] = m.Index
	}
	return out
}

// Solid returns the compound of every member solid (empty for no members).
func (p *Placement) Solid() csg.Solid {
	if p.Len() == 0 {
		return csg.Empty()
	}
	ss := make([]csg.Solid, len(p.members))
	for i, m := range p.members {
		ss[i] = m.Solid
	}
	return csg.NewCompound(ss...)
}
