package bunker

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/terrain/csg"
)

// cornerEdges selects the four sloped corner edges of the wedge.
const cornerEdges = "(not >Z) and (not <Z)"

// makeBody returns the sloped wedge, its corner edges chamfered.
func makeBody(e *env) (csg.Solid, error) {
	f := e.cfg.Footprint
	wedge := csg.InsetWedge(f.Length, f.Width, f.Height, f.Inset)
	if f.CornerChamfer == 0 {
		return wedge, nil
	}
	return csg.Chamfer(wedge, "", cornerEdges, f.CornerChamfer)
}

func (*Interior) make(e *env) (Output, error) {
	floor := e.cfg.Floor()
	box := csg.Box(e.interior.Length, e.interior.Width, e.cfg.Footprint.Height-floor)
	return Output{Cut: csg.Translate(box, 0, 0, floor/2)}, nil
}

func (*Base) make(e *env) (Output, error) {
	f := e.cfg.Footprint
	if f.BaseHeight == 0 {
		return Output{}, nil
	}
	slab := cornerSlab(f.Length, f.Width, f.BaseHeight, f.CornerChamfer)
	return Output{Fill: csg.Translate(slab, 0, 0, -(f.Height/2 + f.BaseHeight/2))}, nil
}

// cornerSlab is a box whose vertical corner edges are cut at 45° by c. It is
// extruded from the octagonal outline so a thin slab can take a corner
// chamfer larger than its own height.
func cornerSlab(l, w, h, c float64) csg.Solid {
	if c == 0 {
		return csg.Box(l, w, h)
	}
	x, y := l/2, w/2
	return csg.Prism([]r2.Vec{
		{X: -x + c, Y: -y}, {X: x - c, Y: -y},
		{X: x, Y: -y + c}, {X: x, Y: y - c},
		{X: x - c, Y: y}, {X: -x + c, Y: y},
		{X: -x, Y: y - c}, {X: -x, Y: -y + c},
	}, h)
}
