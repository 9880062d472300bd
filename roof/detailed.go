package roof

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
)

// makeTray is the inset wedge, finished, then hollowed with an open top.
func (r *Roof) makeTray() (csg.Solid, error) {
	body, err := r.finish(csg.InsetWedge(r.Length, r.Width, r.Height, r.Inset))
	if err != nil {
		return nil, err
	}
	if r.WallWidth == 0 {
		return body, nil
	}
	return csg.Shell(body, r.WallWidth)
}

// makeHatchCuts opens the tray floor under every hatch.
func (r *Roof) makeHatchCuts() error {
	l := r.Hatches.Length - r.Hatches.CutInset
	w := r.Hatches.Width - r.Hatches.CutInset
	h := r.WallWidth + r.Tiles.Height
	cut, err := csg.Chamfer(csg.Box(l, w, h), "", "|Z", r.Hatches.CutChamfer)
	if err != nil {
		return err
	}
	if hatchCutTopBevel < h {
		if cut, err = csg.Chamfer(cut, "+Z", "", hatchCutTopBevel); err != nil {
			return err
		}
	}
	pl, err := r.placeBays(cut, w/2, -r.Height/2+h/2)
	if err != nil {
		return err
	}
	r.hatchCuts = pl.Solid()
	return nil
}

// wallOffset is where the recess of each outer wall is centered.
func (r *Roof) wallOffset() r3.Vec {
	return r3.Vec{
		X: r.Length/2 - wallPostWidth/2 - r.Walls.DetailsInset,
		Y: r.Width/2 - wallPostWidth/2 - r.Walls.DetailsInset,
	}
}

// wallSpan is the top span of one side, as laid out by the detail rows.
func (r *Roof) wallSpan(side float64) float64 { return side - 2*r.Inset }

// makeWallCuts recesses each wall over a whole number of detail pitches.
func (r *Roof) makeWallCuts() csg.Solid {
	var rows [4][]layout.Member
	for side, span := range []float64{r.Length, r.Width, r.Length, r.Width} {
		l := math.Floor(r.wallSpan(span)/wallDetailPitch) * wallDetailPitch
		if l <= 0 {
			continue
		}
		rows[side] = []layout.Member{{Solid: csg.Box(l, r.Walls.DetailsDepth, r.Height)}}
	}
	return layout.Cardinal(rows, r.wallOffset()).Solid()
}

// wallDetail is a panel between two half posts with an arched window cut
// through it.
func (r *Roof) wallDetail() (csg.Solid, error) {
	d := r.Walls.DetailsDepth
	post := csg.Box(wallPostWidth, d+1, r.Height)
	panel := csg.Union(
		csg.Box(wallPanelLength, d, r.Height),
		csg.Translate(post, -wallPanelLength/2, 0, 0),
		csg.Translate(post, wallPanelLength/2, 0, 0),
	)
	arch, err := csg.Fillet(csg.Box(wallPanelLength-d, wallArchDepth, (r.Height+1)/4*3), "Z", "Y", r.Walls.ArchFillet)
	if err != nil {
		return nil, err
	}
	return csg.Cut(panel, arch), nil
}

func (r *Roof) makeWallDetails() (csg.Solid, error) {
	detail, err := r.wallDetail()
	if err != nil {
		return nil, err
	}
	unit := layout.Unit{Solid: detail, Length: wallDetailPitch}
	var rows [4][]layout.Member
	for side, span := range []float64{r.Length, r.Width, r.Length, r.Width} {
		if rows[side], err = (layout.Row{Unit: unit, Span: r.wallSpan(span)}).Place(); err != nil {
			return nil, err
		}
	}
	return layout.Cardinal(rows, r.wallOffset()).Solid(), nil
}

// buildDetailed: tray − wall recesses − hatch openings ∪ wall details ∪
// tiles ∪ hatches, then the pip holes are cut again through whatever the
// unions filled.
func (r *Roof) buildDetailed() csg.Solid {
	res := csg.Cut(r.body, r.wallCuts, r.hatchCuts)
	res = csg.Union(res, r.wallDetails, r.tiles, r.hatches)
	return csg.Cut(res, r.holes)
}
