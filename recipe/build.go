package recipe

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/terrain/bunker"
	"github.com/katalvlaran/terrain/catwalk"
	"github.com/katalvlaran/terrain/csg"
)

const (
	methodNewBunker  = "NewBunker"
	methodNewCatwalk = "NewCatwalk"
	methodMake       = "Make"
)

// Product is a made recipe: the configured piece and its built solid.
type Product struct {
	Recipe  *Recipe
	Bunker  *bunker.Bunker   // nil for a catwalk
	Catwalk *catwalk.Catwalk // nil for a bunker
	Solid   csg.Solid
}

// Make configures the piece, makes it and builds it in the recipe's mode.
func (r *Recipe) Make() (*Product, error) {
	p := &Product{Recipe: r}
	if r.Piece() == KindCatwalk {
		c, err := r.NewCatwalk()
		if err != nil {
			return nil, err
		}
		if err = c.Make(); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", methodMake, r.Title(), err)
		}
		p.Catwalk = c
		p.Solid, err = c.Build()
		return p, err
	}

	b, err := r.NewBunker()
	if err != nil {
		return nil, err
	}
	if err = b.Make(); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodMake, r.Title(), err)
	}
	p.Bunker = b
	switch r.Mode() {
	case ModeBody:
		p.Solid, err = b.BuildBody()
	case ModeRoof:
		p.Solid, err = b.BuildRoof()
	case ModePlate:
		p.Solid, err = b.BuildPlate()
	default:
		p.Solid, err = b.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodMake, r.Title(), err)
	}
	return p, nil
}

// NewBunker returns the configured, unmade bunker.
func (r *Recipe) NewBunker() (*bunker.Bunker, error) {
	if r.Piece() != KindBunker {
		return nil, fmt.Errorf("%s: %s is a %s: %w", methodNewBunker, r.Title(), r.Piece(), ErrInvalidRecipe)
	}
	cfg := bunker.DefaultConfig()
	r.Footprint.apply(&cfg.Footprint)
	r.Panel.apply(&cfg.Panel)

	stages := make(map[bunker.StageKind]bunker.Stage)
	for _, s := range bunker.DefaultStages() {
		stages[s.Kind()] = s
	}
	r.Stages.apply(stages)

	kinds := make([]bunker.StageKind, 0, len(stages))
	for k := range stages {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	list := make([]bunker.Stage, 0, len(kinds))
	for _, k := range kinds {
		list = append(list, stages[k])
	}

	opts := []bunker.Option{bunker.WithStages(list...)}
	if r.PlateGap != nil {
		opts = append(opts, bunker.WithPlateGap(*r.PlateGap))
	}
	return bunker.New(cfg, opts...), nil
}

// NewCatwalk returns the configured, unmade catwalk.
func (r *Recipe) NewCatwalk() (*catwalk.Catwalk, error) {
	if r.Piece() != KindCatwalk {
		return nil, fmt.Errorf("%s: %s is a %s: %w", methodNewCatwalk, r.Title(), r.Piece(), ErrInvalidRecipe)
	}
	c := catwalk.New()
	r.Catwalk.apply(c)
	return c, nil
}

// set copies *src into *dst when src is present.
func set[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setList copies a present list, so "skip: []" clears the stock list.
func setList(dst *[]int, src *[]int) {
	if src != nil {
		*dst = append([]int(nil), (*src)...)
	}
}

func (f *Footprint) apply(dst *bunker.Footprint) {
	if f == nil {
		return
	}
	set(&dst.Length, f.Length)
	set(&dst.Width, f.Width)
	set(&dst.Height, f.Height)
	set(&dst.Inset, f.Inset)
	set(&dst.WallWidth, f.WallWidth)
	set(&dst.BaseHeight, f.BaseHeight)
	set(&dst.FloorThickness, f.FloorThickness)
	set(&dst.CornerChamfer, f.CornerChamfer)
}

func (p *Panel) apply(dst *bunker.PanelGrid) {
	if p == nil {
		return
	}
	set(&dst.Length, p.Length)
	set(&dst.Width, p.Width)
	set(&dst.Padding, p.Padding)
	set(&dst.ArchPaddingTop, p.ArchPaddingTop)
	set(&dst.ArchPaddingSides, p.ArchPaddingSides)
	set(&dst.ArchInnerHeight, p.ArchInnerHeight)
	set(&dst.InnerArchTop, p.InnerArchTop)
	set(&dst.InnerArchSides, p.InnerArchSides)
}

// stage returns the enabled stage of kind, or a fresh stock record.
func stage[T bunker.Stage](m map[bunker.StageKind]bunker.Stage, kind bunker.StageKind, fresh func() T) T {
	if s, ok := m[kind].(T); ok {
		return s
	}
	return fresh()
}

// place enables s, or removes its kind when the section is switched off.
func place(m map[bunker.StageKind]bunker.Stage, s bunker.Stage, t Toggle) {
	if t.off() {
		delete(m, s.Kind())
		return
	}
	m[s.Kind()] = s
}

func (s *Stages) apply(m map[bunker.StageKind]bunker.Stage) {
	if s == nil {
		return
	}
	if s.Interior != nil {
		place(m, &bunker.Interior{}, *s.Interior)
	}
	if s.Base != nil {
		place(m, &bunker.Base{}, *s.Base)
	}
	if src := s.Panels; src != nil {
		dst := stage(m, bunker.KindPanels, func() *bunker.Panels { return &bunker.Panels{} })
		set(&dst.Details, src.Details)
		place(m, dst, src.Toggle)
	}
	if src := s.Pips; src != nil {
		dst := stage(m, bunker.KindPips, bunker.NewPips)
		set(&dst.Magnets, src.Magnets)
		set(&dst.Radius, src.Radius)
		set(&dst.Height, src.Height)
		set(&dst.Padding, src.Padding)
		place(m, dst, src.Toggle)
	}
	if src := s.Windows; src != nil {
		dst := stage(m, bunker.KindWindows, bunker.NewWindows)
		set(&dst.Length, src.Length)
		set(&dst.Height, src.Height)
		set(&dst.Width, src.Width)
		set(&dst.WidthOffset, src.WidthOffset)
		set(&dst.FrameWidth, src.FrameWidth)
		set(&dst.FrameChamfer, src.FrameChamfer)
		set(&dst.FrameChamferSelect, src.FrameChamferSelect)
		setList(&dst.Skip, src.Skip)
		set(&dst.CutPadding, src.CutPadding)
		set(&dst.FillPadding, src.FillPadding)
		place(m, dst, src.Toggle)
	}
	if src := s.Doors; src != nil {
		dst := stage(m, bunker.KindDoors, bunker.NewDoors)
		setList(&dst.Panels, src.Panels)
		set(&dst.Length, src.Length)
		set(&dst.Width, src.Width)
		set(&dst.Height, src.Height)
		set(&dst.Fillet, src.Fillet)
		set(&dst.CutPadding, src.CutPadding)
		set(&dst.FillPadding, src.FillPadding)
		place(m, dst, src.Toggle)
	}
	if src := s.Floor; src != nil {
		dst := stage(m, bunker.KindFloor, bunker.NewFloor)
		set(&dst.Padding, src.Padding)
		set(&dst.TileSize, src.TileSize)
		set(&dst.TileHeight, src.TileHeight)
		set(&dst.TileChamfer, src.TileChamfer)
		set(&dst.MidTileSize, src.MidTileSize)
		set(&dst.TilePadding, src.TilePadding)
		set(&dst.StaggerX, src.StaggerX)
		set(&dst.StaggerY, src.StaggerY)
		place(m, dst, src.Toggle)
	}
	if src := s.FloorCuts; src != nil {
		dst := stage(m, bunker.KindFloorCuts, bunker.NewFloorCuts)
		setList(&dst.Panels, src.Panels)
		set(&dst.Length, src.Length)
		set(&dst.Width, src.Width)
		set(&dst.Chamfer, src.Chamfer)
		place(m, dst, src.Toggle)
	}
	if src := s.Ladders; src != nil {
		dst := stage(m, bunker.KindLadders, bunker.NewLadders)
		setList(&dst.Panels, src.Panels)
		set(&dst.Length, src.Length)
		set(&dst.ZTranslate, src.ZTranslate)
		place(m, dst, src.Toggle)
	}
	if src := s.Roof; src != nil {
		dst := stage(m, bunker.KindRoof, bunker.NewRoof)
		src.apply(dst)
		place(m, dst, src.Toggle)
	}
}

func (src *Roof) apply(dst *bunker.Roof) {
	set(&dst.Style, src.Style)
	set(&dst.Height, src.Height)
	set(&dst.Inset, src.Inset)
	set(&dst.Overflow, src.Overflow)
	set(&dst.WallDetailsInset, src.WallDetailsInset)
	set(&dst.Operation, src.Operation)
	set(&dst.ChamferFaces, src.ChamferFaces)
	set(&dst.ChamferEdges, src.ChamferEdges)
	set(&dst.TileSize, src.TileSize)
	set(&dst.TilePadding, src.TilePadding)
	set(&dst.TileHeight, src.TileHeight)
	set(&dst.TileZOffset, src.TileZOffset)
	set(&dst.HatchLength, src.HatchLength)
	set(&dst.HatchWidth, src.HatchWidth)
	set(&dst.HatchRadius, src.HatchRadius)
	set(&dst.HatchHeight, src.HatchHeight)
	set(&dst.PipHoleMod, src.PipHoleMod)
	if src.XTranslate != nil {
		x := *src.XTranslate
		dst.XTranslate = &x
	}
	if src.ZTranslate != nil {
		z := *src.ZTranslate
		dst.ZTranslate = &z
	}
}

func (c *Catwalk) apply(dst *catwalk.Catwalk) {
	if c == nil {
		return
	}
	set(&dst.Length, c.Length)
	set(&dst.Width, c.Width)
	set(&dst.Height, c.Height)
	set(&dst.BottomChamfer, c.BottomChamfer)
	if in := c.Interior; in != nil {
		set(&dst.Interior.Length, in.Length)
		set(&dst.Interior.Width, in.Width)
		set(&dst.Interior.Height, in.Height)
		set(&dst.Interior.Overlap, in.Overlap)
		set(&dst.Interior.FitPadding, in.FitPadding)
	}
	if m := c.Magnets; m != nil {
		dst.Magnets.Enabled = !m.off()
		set(&dst.Magnets.Radius, m.Radius)
		set(&dst.Magnets.Height, m.Height)
		set(&dst.Magnets.Padding, m.Padding)
	}
	if w := c.Walls; w != nil {
		dst.Walls.Enabled = !w.off()
		set(&dst.Walls.Length, w.Length)
		set(&dst.Walls.Width, w.Width)
		set(&dst.Walls.Height, w.Height)
	}
	if f := c.Floor; f != nil {
		dst.Floor.Enabled = !f.off()
		set(&dst.Floor.Height, f.Height)
		set(&dst.Floor.TileSize, f.TileSize)
		set(&dst.Floor.TilePadding, f.TilePadding)
		set(&dst.Floor.TileChamfer, f.TileChamfer)
	}
}
