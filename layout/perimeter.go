package layout

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
)

const methodPerimeter = "Perimeter"

// Perimeter tiles a unit around a Length × Width rectangle. The unit template
// faces outward along +Y; X/Y/ZTranslate place the rows on each side.
type Perimeter struct {
	Unit    Unit
	Length  float64 // span of the North and South rows
	Width   float64 // span of the East and West rows
	Spacing float64 // zero means Unit.Pitch()

	XTranslate float64 // East/West row offset from center
	YTranslate float64 // North/South row offset from center
	ZTranslate float64

	// Override may replace the copy for a slot of a side's row.
	Override func(side Side, slot int, s csg.Solid) csg.Solid
}

// Counts returns the per-side copy counts (North, East, South, West).
func (p Perimeter) Counts() [4]int {
	x, y := p.row(North, p.Length).Count(), p.row(East, p.Width).Count()
	return [4]int{x, y, x, y}
}

func (p Perimeter) row(side Side, span float64) Row {
	r := Row{Unit: p.Unit, Span: span, Spacing: p.Spacing}
	if p.Override != nil {
		r.Override = func(slot int, s csg.Solid) csg.Solid { return p.Override(side, slot, s) }
	}
	return r
}

// Place lays out every side and returns the placement in global index order.
func (p Perimeter) Place() (*Placement, error) {
	north, err := p.row(North, p.Length).Place()
	if err != nil {
		return nil, fmt.Errorf("%s: length: %w", methodPerimeter, err)
	}
	south, _ := p.row(South, p.Length).Place()
	east, err := p.row(East, p.Width).Place()
	if err != nil {
		return nil, fmt.Errorf("%s: width: %w", methodPerimeter, err)
	}
	west, _ := p.row(West, p.Width).Place()
	return Cardinal([4][]Member{north, east, south, west},
		r3.Vec{X: p.XTranslate, Y: p.YTranslate, Z: p.ZTranslate}), nil
}

// Rotations about +Z, in degrees. sideOrder carries the row's slot positions
// onto each side and fixes the global numbering: East runs south to north and
// West north to south. sideFacing turns each copy about its own slot so the
// template's +Y face points away from the rectangle.
var (
	sideOrder  = [4]float64{North: 0, East: 90, South: 180, West: 270}
	sideFacing = [4]float64{North: 0, East: -90, South: 180, West: 90}
)

// Cardinal places four template-space rows on the sides of a rectangle and
// numbers them globally: North at +y, East at +x, South at -y, West at -x.
// North runs west to east, East south to north, South east to west and West
// north to south.
func Cardinal(rows [4][]Member, offset r3.Vec) *Placement {
	var out []Member
	for side, row := range rows {
		shift := sideOffset(Side(side), offset)
		for _, m := range row {
			c := r3.Add(csg.RotatePoint(m.Center, csg.ZAxis, sideOrder[side]), shift)
			local := csg.TranslateVec(m.Solid, r3.Scale(-1, m.Center))
			out = append(out, Member{
				Index:  len(out),
				Side:   Side(side),
				Slot:   m.Slot,
				Center: c,
				Solid:  csg.TranslateVec(csg.Rotate(local, csg.ZAxis, sideFacing[side]), c),
			})
		}
	}
	return &Placement{members: out}
}

func sideOffset(side Side, o r3.Vec) r3.Vec {
	switch side {
	case North:
		return r3.Vec{Y: o.Y, Z: o.Z}
	case East:
		return r3.Vec{X: o.X, Z: o.Z}
	case South:
		return r3.Vec{Y: -o.Y, Z: o.Z}
	default:
		return r3.Vec{X: -o.X, Z: o.Z}
	}
}
