package bunker

import (
	"fmt"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// cutWidth is how far a window opening reaches out from the interior face.
// An overhanging wall thickens to WallWidth - Inset at the top.
func (s *Windows) cutWidth(f Footprint) float64 {
	if f.Inset < 0 {
		return -f.Inset + f.WallWidth
	}
	return f.Inset + f.WallWidth
}

// frameWidth is the frame depth through the wall.
func (s *Windows) frameWidth(f Footprint) float64 {
	switch {
	case s.Width > 0:
		return s.Width
	case f.Inset < 0:
		return -f.Inset
	case f.Inset == 0:
		return f.WallWidth + windowFlushAllowance
	}
	return f.Inset
}

func (s *Windows) make(e *env) (Output, error) {
	f := e.cfg.Footprint
	if s.Length <= 0 || s.Height <= 0 || s.Height >= f.Height {
		return Output{}, fmt.Errorf("window %g × %g in a %g wall: %w", s.Length, s.Height, f.Height, ErrInvalidStage)
	}
	mask := layout.Mask{Skip: layout.NewIndexSet(s.Skip...).Union(e.reserved).Sorted()}
	z := -e.cfg.Panel.Padding

	cut, err := s.cutUnit(e)
	if err != nil {
		return Output{}, err
	}
	cw := s.cutWidth(f)
	pl, err := e.series(cut, s.CutPadding, e.interiorOffset(cw/2, z), mask)
	if err != nil {
		return Output{}, fmt.Errorf("cuts: %w", err)
	}
	out := Output{Cut: pl.Solid(), Bays: pl.Indices()}

	frame, err := s.fillUnit(e)
	if err != nil {
		return Output{}, err
	}
	fw := s.frameWidth(f)
	pl, err = e.series(frame, s.FillPadding, e.interiorOffset(fw/2+s.WidthOffset, z), mask)
	if err != nil {
		return Output{}, fmt.Errorf("frames: %w", err)
	}
	out.Fill = pl.Solid()
	return out, nil
}

func (s *Windows) cutUnit(e *env) (csg.Solid, error) {
	if s.Cut != nil {
		return component(s.Cut, e.cfg)
	}
	return csg.Box(s.Length, s.cutWidth(e.cfg.Footprint), s.Height), nil
}

func (s *Windows) fillUnit(e *env) (csg.Solid, error) {
	if s.Fill != nil {
		return component(s.Fill, e.cfg)
	}
	w := part.NewWindowFrame(s.Length, s.frameWidth(e.cfg.Footprint), s.Height)
	w.FrameWidth, w.Chamfer, w.ChamferEdges = s.FrameWidth, s.FrameChamfer, s.FrameChamferSelect
	frame, err := part.MakeBuild(w)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	return frame, nil
}
