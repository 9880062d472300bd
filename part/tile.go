package part

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// OctagonTile is a floor tile: a square with chamfered corners plus a small
// diamond "dot" filling the gap at its +X+Y corner, so a grid of pitch
// Size+Padding leaves no bare corners.
type OctagonTile struct {
	Size, Height float64
	Chamfer      float64
	MidSize      float64
	Padding      float64

	terrain.Lifecycle
	tile csg.Solid
}

// NewOctagonTile returns the stock 11 mm floor tile.
func NewOctagonTile() *OctagonTile {
	return &OctagonTile{Size: 11, Height: 1, Chamfer: 2.4, MidSize: 3.2, Padding: 1}
}

// Pitch is the grid spacing the tile is designed for.
func (t *OctagonTile) Pitch() float64 { return t.Size + t.Padding }

// Make builds the tile.
func (t *OctagonTile) Make() error {
	const method = "OctagonTile.Make"
	if err := validatePositive(method, "size", t.Size, "height", t.Height); err != nil {
		return err
	}
	oct, err := csg.Chamfer(csg.Box(t.Size, t.Size, t.Height), "", "|Z", t.Chamfer)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	t.tile = oct
	if t.MidSize > 0 {
		c := t.Size/2 + t.Padding/2
		dot := csg.Translate(csg.Rotate(csg.Box(t.MidSize, t.MidSize, t.Height), csg.ZAxis, 45), c, c, 0)
		t.tile = csg.Union(oct, dot)
	}
	t.MarkMade()
	return nil
}

// Build returns the tile.
func (t *OctagonTile) Build() (csg.Solid, error) {
	if err := t.CheckMade("OctagonTile.Build"); err != nil {
		return nil, err
	}
	return t.tile, nil
}

// Slot returns a stadium-shaped bar of the given length and width along X.
func Slot(length, width, height float64) csg.Solid {
	r := width / 2
	straight := length - width
	if straight <= 0 {
		return csg.Cylinder(height, r)
	}
	return csg.Union(
		csg.Box(straight, width, height),
		csg.Translate(csg.Cylinder(height, r), -straight/2, 0, 0),
		csg.Translate(csg.Cylinder(height, r), straight/2, 0, 0),
	)
}

// SlotTile is a square roof tile with five parallel diagonal slots cut
// through it, running along (1,-1) and stepped along (1,1). Slot proportions
// scale with Size.
type SlotTile struct {
	Size, Height float64

	terrain.Lifecycle
	tile csg.Solid
}

// Slot proportions relative to the tile size.
const (
	slotOffsetRatio = 0.143
	slotWidthRatio  = 0.095
	slotMidRatio    = 0.667
	slotShortRatio  = 0.334
)

// Make builds the tile.
func (t *SlotTile) Make() error {
	if err := validatePositive("SlotTile.Make", "size", t.Size, "height", t.Height); err != nil {
		return err
	}
	off := t.Size * slotOffsetRatio
	width := t.Size * slotWidthRatio
	cut := func(length, d float64) csg.Solid {
		s := csg.Rotate(Slot(length, width, 2*t.Height), csg.ZAxis, -45)
		return csg.Translate(s, d, d, t.Height/2)
	}
	t.tile = csg.Cut(csg.Box(t.Size, t.Size, t.Height),
		cut(t.Size, 0),
		cut(t.Size*slotMidRatio, -off),
		cut(t.Size*slotMidRatio, off),
		cut(t.Size*slotShortRatio, -2*off),
		cut(t.Size*slotShortRatio, 2*off),
	)
	t.MarkMade()
	return nil
}

// Build returns the tile.
func (t *SlotTile) Build() (csg.Solid, error) {
	if err := t.CheckMade("SlotTile.Build"); err != nil {
		return nil, err
	}
	return t.tile, nil
}

// Diamond returns a rhombus prism with diagonals length (X) and width (Y),
// its bottom edges chamfered by chamfer (0 for none).
func Diamond(length, width, height, chamfer float64) (csg.Solid, error) {
	if err := validatePositive("Diamond", "length", length, "width", width, "height", height); err != nil {
		return nil, err
	}
	d := csg.Prism([]r2.Vec{
		{X: length / 2}, {Y: width / 2}, {X: -length / 2}, {Y: -width / 2},
	}, height)
	if chamfer == 0 {
		return d, nil
	}
	return csg.Chamfer(d, "-Z", "", chamfer)
}
