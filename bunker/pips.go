package bunker

import (
	"fmt"

	"github.com/katalvlaran/terrain/csg"
)

// corners places s at (±x, ±y, z).
func corners(s csg.Solid, x, y, z float64) csg.Solid {
	return csg.Union(
		csg.Translate(s, x, y, z),
		csg.Translate(s, -x, y, z),
		csg.Translate(s, -x, -y, z),
		csg.Translate(s, x, -y, z),
	)
}

func (s *Pips) make(e *env) (Output, error) {
	if s.Radius <= 0 || s.Height <= 0 || s.Padding < 0 {
		return Output{}, fmt.Errorf("radius %g, height %g, padding %g: %w", s.Radius, s.Height, s.Padding, ErrInvalidStage)
	}
	f := e.cfg.Footprint
	pip := csg.Cylinder(s.Height, s.Radius)

	var out Output
	x := f.Length/2 - f.Inset - s.Radius - s.Padding
	y := f.Width/2 - f.Inset - s.Radius - s.Padding
	if s.Magnets {
		out.Cut = corners(pip, x, y, f.Height/2-s.Height/2)
	} else {
		out.Fill = corners(pip, x, y, f.Height/2+s.Height/2)
	}

	x = f.Length/2 - s.Radius - s.Padding
	y = f.Width/2 - s.Radius - s.Padding
	out.BaseCut = corners(pip, x, y, -(f.Height/2 + f.BaseHeight - s.Height/2))
	return out, nil
}
