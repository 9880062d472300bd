package roof

import (
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

func (r *Roof) makeBody() (csg.Solid, error) {
	if r.Style == Detailed {
		return r.makeTray()
	}
	body := csg.Box(r.TopLength(), r.TopWidth(), r.Height)
	return r.finish(body)
}

// cutTiles reports whether flat-roof tiles are sunk into the top.
func (r *Roof) cutTiles() bool {
	return r.Style == Flat && r.Tiles.ZOffset < flatTileCutOffset
}

func (r *Roof) tileZ() float64 {
	switch {
	case r.Style == Detailed:
		return -r.Height/2 + r.WallWidth + r.Tiles.Height/2
	case r.cutTiles():
		return r.Height/2 - r.Tiles.Height/2
	default:
		return r.Height/2 + r.Tiles.Height/2
	}
}

// makeTiles grids slot tiles over the interior: columns along X, rows along Y.
func (r *Roof) makeTiles() (csg.Solid, error) {
	tile, err := part.MakeBuild(&part.SlotTile{Size: r.Tiles.Size, Height: r.Tiles.Height})
	if err != nil {
		return nil, err
	}
	pitch := r.Tiles.Size + r.Tiles.Padding
	gp, err := layout.Grid{
		Tile:    tile,
		Columns: fit(r.InteriorLength(), pitch),
		Rows:    fit(r.InteriorWidth(), pitch),
		PitchX:  pitch,
		PitchY:  pitch,
	}.Place()
	if err != nil {
		return nil, err
	}
	return csg.Translate(gp.Solid(), 0, 0, r.tileZ()), nil
}

func (r *Roof) hatchZ() float64 {
	if r.Style == Detailed {
		return -r.Height/2 + r.Hatches.Height/2 + r.WallWidth + r.Hatches.ZTranslate
	}
	return r.Height/2 + r.Hatches.Height/2 + r.Hatches.ZTranslate
}

func (r *Roof) makeHatches() error {
	h := part.NewHatch()
	h.Length, h.Width, h.Height, h.Radius = r.Hatches.Length, r.Hatches.Width, r.Hatches.Height, r.Hatches.Radius
	hatch, err := part.MakeBuild(h)
	if err != nil {
		return err
	}
	pl, err := r.placeBays(hatch, h.Width/2, r.hatchZ())
	if err != nil {
		return err
	}
	r.hatches, r.hatchBays = pl.Solid(), pl.Indices()
	if r.Style == Detailed {
		return r.makeHatchCuts()
	}
	return nil
}

// makeHoles places four pip holes in the bottom face, one per corner.
func (r *Roof) makeHoles() csg.Solid {
	rad := r.Holes.Diameter / 2
	var x, y float64
	switch {
	case r.Style == Flat:
		x, y = r.TopLength()/2, r.TopWidth()/2
	case r.Inset <= 0:
		x, y = r.Length/2, r.Width/2
	default:
		x, y = r.TopLength()/2, r.TopWidth()/2
	}
	x -= rad + r.Holes.Inset
	y -= rad + r.Holes.Inset
	z := -(r.Height/2 - r.Holes.Depth/2)
	return corners(csg.Cylinder(r.Holes.Depth, rad), x, y, z)
}

// buildFlat: body − holes ∪ hatches, then tiles added or cut.
func (r *Roof) buildFlat() csg.Solid {
	res := csg.Union(csg.Cut(r.body, r.holes), r.hatches)
	if r.cutTiles() {
		return csg.Cut(res, r.tiles)
	}
	return csg.Union(res, r.tiles)
}
