package bunker

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// tilt stands a bay unit, whose foot sits at z=0, against the sloped wall:
// rotated about X onto the wall angle and dropped to the body bottom.
func (e *env) tilt(s csg.Solid) csg.Solid {
	return csg.Translate(csg.Rotate(s, csg.XAxis, 90-e.angle), 0, 0, -e.cfg.Footprint.Height/2)
}

// bayHeight is the height of a panel recess.
func (e *env) bayHeight() float64 { return e.cfg.Footprint.Height - e.cfg.Panel.Padding }

// wallRows places unit on every bay, rows on the outer faces of the footprint.
func (e *env) wallRows(unit csg.Solid) (*layout.Placement, error) {
	f := e.cfg.Footprint
	return e.series(unit, 0, r3.Vec{X: f.Length / 2, Y: f.Width / 2}, layout.Mask{})
}

// make cuts the panel recesses. Details are made separately, late in the
// make order, by makeDetails.
func (*Panels) make(e *env) (Output, error) {
	p := e.cfg.Panel
	h := e.bayHeight()
	// foot on z=0, back face on the outer wall
	unit := csg.Translate(csg.Box(p.Length, p.Width, h), 0, -p.Width/2, h/2)
	pl, err := e.wallRows(e.tilt(unit))
	if err != nil {
		return Output{}, fmt.Errorf("bays: %w", err)
	}
	cut, bays := placed(pl)
	return Output{Cut: cut, Bays: bays}, nil
}

// makeDetails lays an arched overlay into every recess, arch outward.
func (s *Panels) makeDetails(e *env) (csg.Solid, error) {
	if !s.Details {
		return nil, nil
	}
	p := e.cfg.Panel
	h := e.bayHeight()
	a := part.NewArchPanel(p.Length, p.Width, h)
	a.PaddingTop, a.PaddingSides = p.ArchPaddingTop, p.ArchPaddingSides
	a.InnerHeight, a.InnerTop, a.InnerSides = p.ArchInnerHeight, p.InnerArchTop, p.InnerArchSides
	panel, err := part.MakeBuild(a)
	if err != nil {
		return nil, fmt.Errorf("details: %w", err)
	}
	unit := csg.Rotate(csg.Translate(panel, 0, p.Width/2, h/2), csg.ZAxis, 180)
	pl, err := e.wallRows(e.tilt(unit))
	if err != nil {
		return nil, fmt.Errorf("details: %w", err)
	}
	return pl.Solid(), nil
}
