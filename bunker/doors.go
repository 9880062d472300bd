package bunker

import (
	"fmt"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// cutWidth is how far a door opening reaches out from the interior face.
func (s *Doors) cutWidth(f Footprint) float64 {
	if f.Inset < 0 {
		return -f.Inset + f.WallWidth
	}
	return f.Inset + f.WallWidth
}

// fillOffset is the door's distance from the center, past the interior face.
func (s *Doors) fillOffset(f Footprint) float64 {
	if f.Inset <= 0 {
		return s.Width * doorFlushFraction
	}
	return s.Width
}

func (s *Doors) make(e *env) (Output, error) {
	f := e.cfg.Footprint
	if s.Height >= f.Height-e.cfg.Floor() {
		return Output{}, fmt.Errorf("door height %g above the ceiling: %w", s.Height, ErrInvalidStage)
	}
	mask := layout.Mask{Keep: s.Panels}

	cut, err := s.cutUnit(e)
	if err != nil {
		return Output{}, err
	}
	cw := s.cutWidth(f)
	pl, err := e.series(cut, s.CutPadding, e.interiorOffset(cw/2, 0), mask)
	if err != nil {
		return Output{}, fmt.Errorf("cuts: %w", err)
	}
	out := Output{Cut: pl.Solid(), Bays: pl.Indices()}

	door, err := s.fillUnit(e)
	if err != nil {
		return Output{}, err
	}
	pl, err = e.series(door, s.FillPadding, e.interiorOffset(s.fillOffset(f), 0), mask)
	if err != nil {
		return Output{}, fmt.Errorf("doors: %w", err)
	}
	out.Fill = pl.Solid()
	return out, nil
}

// sill drops a built-in door unit onto the floor. Override units are placed
// at z = 0 and positioned by their factory.
func (s *Doors) sill(e *env, u csg.Solid) csg.Solid {
	return csg.Translate(u, 0, 0, -(e.cfg.Footprint.Height/2-s.Height/2)+e.cfg.Floor())
}

func (s *Doors) cutUnit(e *env) (csg.Solid, error) {
	if s.Cut != nil {
		return component(s.Cut, e.cfg)
	}
	box := csg.Box(s.Length, s.cutWidth(e.cfg.Footprint), s.Height)
	if s.Fillet == 0 {
		return s.sill(e, box), nil
	}
	cut, err := csg.Fillet(box, "", "|Y", s.Fillet)
	if err != nil {
		return nil, fmt.Errorf("cut: %w", err)
	}
	return s.sill(e, cut), nil
}

func (s *Doors) fillUnit(e *env) (csg.Solid, error) {
	if s.Fill != nil {
		return component(s.Fill, e.cfg)
	}
	d := part.NewBlastDoor()
	d.Length, d.Width, d.Height, d.Fillet = s.Length, s.Width, s.Height, s.Fillet
	door, err := part.MakeBuild(d)
	if err != nil {
		return nil, fmt.Errorf("door: %w", err)
	}
	return s.sill(e, door), nil
}
