package bunker

import (
	"github.com/katalvlaran/terrain/roof"
)

// make configures and makes the nested roof. The roof sits on the body top,
// Overflow wider per side, and numbers its hatch bays on the body's grid.
func (s *Roof) make(e *env) (Output, error) {
	f := e.cfg.Footprint
	r := roof.New(s.Style)
	r.Length = f.Length - 2*(f.Inset-s.Overflow)
	r.Width = f.Width - 2*(f.Inset-s.Overflow)
	r.Height = s.Height
	r.Inset = s.Inset
	r.WallWidth = f.WallWidth
	r.Operation = s.Operation
	r.Chamfer = f.CornerChamfer
	r.ChamferFaces, r.ChamferEdges = s.ChamferFaces, s.ChamferEdges

	r.Tiles = roof.Tiles{
		Enabled: e.roofTiles,
		Size:    s.TileSize, Padding: s.TilePadding, Height: s.TileHeight,
		ZOffset: s.TileZOffset,
	}
	r.Hatches.Panels = e.hatchBays
	r.Hatches.Length, r.Hatches.Width = s.HatchLength, s.HatchWidth
	r.Hatches.Height, r.Hatches.Radius = s.HatchHeight, s.HatchRadius
	r.Bays = roof.Bays{
		PanelLength: e.cfg.Panel.Length, PanelPadding: e.cfg.Panel.Padding,
		SpanLength: f.Length, SpanWidth: f.Width,
		InteriorLength: e.interior.Length, InteriorWidth: e.interior.Width,
	}
	r.Walls.DetailsInset = s.WallDetailsInset

	if p := e.holes; p != nil {
		rad := p.Radius * s.PipHoleMod
		r.Holes = roof.Holes{Enabled: true, Diameter: 2 * rad, Depth: p.Height}
		// line the holes up with the pegs on the body top
		r.Holes.Inset = holeBase(r) - rad - (f.Length/2 - f.Inset - p.Radius - p.Padding)
	}

	if err := r.Make(); err != nil {
		return Output{}, err
	}
	return Output{Bays: r.HatchBays(), nested: r}, nil
}

// holeBase is the half length the roof measures its holes from.
func holeBase(r *roof.Roof) float64 {
	if r.Style == roof.Detailed && r.Inset <= 0 {
		return r.Length / 2
	}
	return r.TopLength() / 2
}
