package bunker

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// Pitch is the grid spacing of the floor tiles.
func (s *Floor) Pitch() float64 { return s.TileSize + s.TilePadding }

// fit is floor(span/pitch), never negative.
func fit(span, pitch float64) int {
	if span <= 0 || pitch <= 0 {
		return 0
	}
	return int(math.Floor(span/pitch + 1e-9))
}

func (s *Floor) make(e *env) (Output, error) {
	if s.Pitch() <= 0 {
		return Output{}, fmt.Errorf("tile pitch %g: %w", s.Pitch(), ErrInvalidStage)
	}
	tile, err := s.tile(e)
	if err != nil {
		return Output{}, err
	}
	gp, err := layout.Grid{
		Tile:     tile,
		Columns:  fit(e.interior.Length-s.Padding, s.Pitch()),
		Rows:     fit(e.interior.Width-s.Padding, s.Pitch()),
		PitchX:   s.Pitch(),
		PitchY:   s.Pitch(),
		StaggerX: s.StaggerX,
		StaggerY: s.StaggerY,
	}.Place()
	if err != nil {
		return Output{}, fmt.Errorf("grid: %w", err)
	}
	z := -(e.cfg.Footprint.Height/2 - s.TileHeight/2 - e.cfg.Floor())
	return Output{Fill: csg.Translate(gp.Solid(), 0, 0, z)}, nil
}

func (s *Floor) tile(e *env) (csg.Solid, error) {
	if s.Tile != nil {
		return component(s.Tile, e.cfg)
	}
	t := &part.OctagonTile{
		Size: s.TileSize, Height: s.TileHeight, Chamfer: s.TileChamfer,
		MidSize: s.MidTileSize, Padding: s.TilePadding,
	}
	tile, err := part.MakeBuild(t)
	if err != nil {
		return nil, fmt.Errorf("tile: %w", err)
	}
	return tile, nil
}

// make opens the floor along the inner wall of each listed bay, through the
// base and the tiles above it.
func (s *FloorCuts) make(e *env) (Output, error) {
	f := e.cfg.Footprint
	h := e.cfg.Floor() + f.BaseHeight + e.tileHeight
	cut := csg.Solid(csg.Box(s.Length, s.Width, h))
	if s.Chamfer > 0 {
		var err error
		if cut, err = csg.Chamfer(cut, "", "|Z", s.Chamfer); err != nil {
			return Output{}, fmt.Errorf("cut: %w", err)
		}
	}
	off := e.interiorOffset(-s.Width/2, -f.Height/2-f.BaseHeight+h/2)
	pl, err := e.series(cut, 0, off, layout.Mask{Keep: s.Panels})
	if err != nil {
		return Output{}, err
	}
	c, bays := placed(pl)
	return Output{Cut: c, Bays: bays}, nil
}
