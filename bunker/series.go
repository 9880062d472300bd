package bunker

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
)

// series lays unit on the shared bay grid: counted over the footprint spans,
// spaced Panel.Spacing()+2·extraPadding apart, rows offset by off, then masked.
// Every wall feature goes through here so bay i is the same place for all.
func (e *env) series(unit csg.Solid, extraPadding float64, off r3.Vec, mask layout.Mask) (*layout.Placement, error) {
	p := e.cfg.Panel
	pl, err := layout.Perimeter{
		Unit:       layout.Unit{Solid: unit, Length: p.Length, Padding: p.Padding},
		Length:     e.cfg.Footprint.Length,
		Width:      e.cfg.Footprint.Width,
		Spacing:    p.Spacing() + 2*extraPadding,
		XTranslate: off.X,
		YTranslate: off.Y,
		ZTranslate: off.Z,
	}.Place()
	if err != nil {
		return nil, err
	}
	return mask.Apply(pl), nil
}

// interiorOffset places rows at the interior faces shifted outward by d
// (negative d pulls them into the room).
func (e *env) interiorOffset(d, z float64) r3.Vec {
	return r3.Vec{X: e.interior.Length/2 + d, Y: e.interior.Width/2 + d, Z: z}
}

// placed returns the compound and the surviving bay indices.
func placed(pl *layout.Placement) (csg.Solid, []int) {
	return pl.Solid(), pl.Indices()
}
