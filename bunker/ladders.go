package bunker

import (
	"fmt"

	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// make stands a ladder against the inner wall of each listed bay.
func (s *Ladders) make(e *env) (Output, error) {
	l := part.NewLadder(e.cfg.Footprint.Height)
	l.Length = s.Length
	if s.Customize != nil {
		s.Customize(l)
	}
	ladder, err := part.MakeBuild(l)
	if err != nil {
		return Output{}, fmt.Errorf("ladder: %w", err)
	}
	pl, err := e.series(ladder, 0, e.interiorOffset(-l.Width/2, s.ZTranslate), layout.Mask{Keep: s.Panels})
	if err != nil {
		return Output{}, err
	}
	fill, bays := placed(pl)
	return Output{Fill: fill, Bays: bays}, nil
}
