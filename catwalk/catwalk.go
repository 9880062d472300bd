package catwalk

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

// Corner wall arches: round arches archLength wide, counted at archLength +
// archPadding and spaced archLength + archGap apart. Each arch stops
// archDrop short of the wall top; the first arches at the pointed end drop
// further so they clear the slope.
const (
	archLength  = 4
	archPadding = 2
	archGap     = 2.7
	archDrop    = 4
	magnetFit   = 0.1 // radial clearance of a magnet hole
)

// archEndDrops are the extra drops of the first arches from the pointed end.
var archEndDrops = [...]float64{8, 4}

// Interior is the opening the roof drops into.
type Interior struct {
	Length, Width float64
	Height        float64 // ledge thickness under the opening
	Overlap       float64 // how far the ledge reaches under the roof
	FitPadding    float64 // clearance added to the opening
}

// Magnets are four holes in the ledge underside.
type Magnets struct {
	Enabled                 bool
	Radius, Height, Padding float64
}

// Walls are the L-shaped walls on each corner of the platform.
type Walls struct {
	Enabled               bool
	Length, Width, Height float64
}

// Floor is the diamond walkway engraved into the platform top.
type Floor struct {
	Enabled               bool
	Height                float64 // engraving depth
	TileSize, TilePadding float64
	TileChamfer           float64
}

// Catwalk is the platform ring around a roof. Set fields, call Make, then Build.
type Catwalk struct {
	Length, Width, Height float64
	BottomChamfer         float64

	Interior Interior
	Magnets  Magnets
	Walls    Walls
	Floor    Floor

	terrain.Lifecycle
	platform, magnets, walls, floor csg.Solid
}

// New returns the stock 187 × 187 × 4 catwalk around a 130 × 130 opening.
func New() *Catwalk {
	return &Catwalk{
		Length: 187, Width: 187, Height: 4, BottomChamfer: 3.9,
		Interior: Interior{Length: 130, Width: 130, Height: 2, Overlap: 5, FitPadding: 0.4},
		Magnets:  Magnets{Enabled: true, Radius: 1.5, Height: 2, Padding: 1.5},
		Walls:    Walls{Enabled: true, Length: 55, Width: 3, Height: 25},
		Floor:    Floor{Enabled: true, Height: 1, TileSize: 12, TilePadding: 2, TileChamfer: 0.4},
	}
}

// opening is the length and width of the cut the roof drops into.
func (c *Catwalk) opening() (float64, float64) {
	return c.Interior.Length + c.Interior.FitPadding, c.Interior.Width + c.Interior.FitPadding
}

func (c *Catwalk) validate(method string) error {
	ol, ow := c.opening()
	switch {
	case c.Length <= 0 || c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%s: %g × %g × %g: %w", method, c.Length, c.Width, c.Height, ErrInvalidCatwalk)
	case ol <= 0 || ow <= 0 || ol >= c.Length || ow >= c.Width:
		return fmt.Errorf("%s: opening %g × %g leaves no ring: %w", method, ol, ow, ErrInvalidCatwalk)
	case c.Interior.Height <= 0 || c.Interior.Height > c.Height:
		return fmt.Errorf("%s: ledge height %g outside (0, %g]: %w", method, c.Interior.Height, c.Height, ErrInvalidCatwalk)
	case c.Interior.Overlap <= 0 || 2*c.Interior.Overlap >= c.Interior.Length || 2*c.Interior.Overlap >= c.Interior.Width:
		return fmt.Errorf("%s: ledge overlap %g: %w", method, c.Interior.Overlap, ErrInvalidCatwalk)
	case c.BottomChamfer >= c.Height:
		return fmt.Errorf("%s: bottom chamfer %g >= height %g: %w", method, c.BottomChamfer, c.Height, ErrInvalidCatwalk)
	}
	if c.Walls.Enabled && (c.Walls.Width <= 0 || c.Walls.Height <= 0 || c.Walls.Length <= c.Walls.Height/2) {
		return fmt.Errorf("%s: wall %g × %g × %g: %w", method, c.Walls.Length, c.Walls.Width, c.Walls.Height, ErrInvalidCatwalk)
	}
	if c.Magnets.Enabled && (c.Magnets.Radius <= 0 || c.Magnets.Height <= 0) {
		return fmt.Errorf("%s: magnet %g × %g: %w", method, c.Magnets.Radius, c.Magnets.Height, ErrInvalidCatwalk)
	}
	if c.Floor.Enabled && (c.Floor.Height <= 0 || c.Floor.Height >= c.Height) {
		return fmt.Errorf("%s: floor depth %g outside (0, %g): %w", method, c.Floor.Height, c.Height, ErrInvalidCatwalk)
	}
	return nil
}

// Make builds and memoizes every enabled feature.
func (c *Catwalk) Make() error {
	const method = "Catwalk.Make"
	c.Reset()
	c.platform, c.magnets, c.walls, c.floor = nil, nil, nil, nil
	if err := c.validate(method); err != nil {
		return err
	}

	var err error
	if c.platform, err = c.makePlatform(); err != nil {
		return fmt.Errorf("%s: platform: %w", method, err)
	}
	if c.Magnets.Enabled {
		c.magnets = c.makeMagnets()
	}
	if c.Walls.Enabled {
		if c.walls, err = c.makeWalls(); err != nil {
			return fmt.Errorf("%s: walls: %w", method, err)
		}
	}
	if c.Floor.Enabled {
		if c.floor, err = c.makeFloor(); err != nil {
			return fmt.Errorf("%s: floor: %w", method, err)
		}
	}
	c.MarkMade()
	return nil
}

// Build assembles platform − magnets ∪ walls − floor. It is idempotent.
func (c *Catwalk) Build() (csg.Solid, error) {
	if err := c.CheckMade("Catwalk.Build"); err != nil {
		return nil, err
	}
	return csg.Cut(csg.Union(csg.Cut(c.platform, c.magnets), c.walls), c.floor), nil
}

func (c *Catwalk) ledgeZ() float64 { return -(c.Height/2 - c.Interior.Height/2) }

func (c *Catwalk) makePlatform() (csg.Solid, error) {
	slab, err := csg.Chamfer(csg.Box(c.Length, c.Width, c.Height), "-Z", "", c.BottomChamfer)
	if err != nil {
		return nil, err
	}
	ol, ow := c.opening()
	in := c.Interior
	ledge := csg.Translate(csg.Box(ol, ow, in.Height), 0, 0, c.ledgeZ())
	ledgeCut := csg.Translate(csg.Box(in.Length-2*in.Overlap, in.Width-2*in.Overlap, in.Height), 0, 0, c.ledgeZ())
	return csg.Cut(csg.Union(csg.Cut(slab, csg.Box(ol, ow, c.Height)), ledge), ledgeCut), nil
}

// makeMagnets places a hole under each corner of the ledge.
func (c *Catwalk) makeMagnets() csg.Solid {
	m := c.Magnets
	hole := csg.Cylinder(m.Height, m.Radius+magnetFit)
	x := c.Interior.Length/2 - m.Radius - m.Padding
	y := c.Interior.Width/2 - m.Radius - m.Padding
	z := -(c.Height/2 - m.Height/2)
	return csg.Union(
		csg.Translate(hole, x, y, z),
		csg.Translate(hole, -x, y, z),
		csg.Translate(hole, -x, -y, z),
		csg.Translate(hole, x, -y, z),
	)
}

// wall is one corner wall: pointed toward -X and pierced by a row of arches.
func (c *Catwalk) wall() (csg.Solid, error) {
	w := c.Walls
	l, h := w.Length/2, w.Height/2
	// XZ profile with the -X end cut to a point, stood up along Y
	profile := csg.Prism([]r2.Vec{
		{X: -l + h, Y: -h}, {X: l, Y: -h}, {X: l, Y: h}, {X: -l + h, Y: h}, {X: -l, Y: 0},
	}, w.Width)
	body := csg.Rotate(profile, csg.XAxis, 90)

	arch := func(drop float64) csg.Solid {
		return csg.Translate(part.RoundArch(archLength, w.Width, w.Height-drop), 0, 0, -drop/2)
	}
	arches, err := layout.Row{
		Unit:    layout.Unit{Solid: arch(archDrop), Length: archLength, Padding: archPadding},
		Span:    w.Length,
		Spacing: archLength + archGap,
		Override: func(slot int, s csg.Solid) csg.Solid {
			if slot < len(archEndDrops) {
				return arch(archDrop + archEndDrops[slot])
			}
			return s
		},
	}.Place()
	if err != nil {
		return nil, err
	}
	return csg.Cut(body, layout.NewPlacement(arches).Solid()), nil
}

// makeWalls stands an L of two walls on each platform corner.
func (c *Catwalk) makeWalls() (csg.Solid, error) {
	w := c.Walls
	wall, err := c.wall()
	if err != nil {
		return nil, err
	}
	// joint at the origin, arms running -X and +Y
	arm := csg.Translate(wall, -(w.Length/2 - w.Width/2), 0, 0)
	corner := csg.Translate(csg.Union(arm, csg.Rotate(arm, csg.ZAxis, -90)), 0, 0, w.Height/2+c.Height/2)

	x, y := c.Length/2-w.Width/2, c.Width/2-w.Width/2
	return csg.Union(
		csg.Translate(corner, x, -y, 0),
		csg.Translate(csg.Rotate(corner, csg.ZAxis, -90), -x, -y, 0),
		csg.Translate(csg.Rotate(corner, csg.ZAxis, 180), -x, y, 0),
		csg.Translate(csg.Rotate(corner, csg.ZAxis, 90), x, y, 0),
	), nil
}

// makeFloor clips the diamond grid to the walkway ring, sunk into the top.
func (c *Catwalk) makeFloor() (csg.Solid, error) {
	f := c.Floor
	diamond, err := part.Diamond(f.TileSize, f.TileSize, f.Height, f.TileChamfer)
	if err != nil {
		return nil, err
	}
	pitch := f.TileSize + f.TilePadding
	span := func(side float64) float64 { return side - c.Height }
	gp, err := layout.Grid{
		Tile:      diamond,
		Columns:   fit(span(c.Length), pitch/2),
		Rows:      fit(span(c.Width), pitch) + 2,
		PitchX:    pitch / 2,
		PitchY:    pitch,
		StaggerY:  pitch / 2,
		StaggerBy: layout.ByColumn,
	}.Place()
	if err != nil {
		return nil, err
	}
	ol, ow := c.opening()
	ring := csg.Cut(csg.Box(span(c.Length), span(c.Width), f.Height), csg.Box(ol, ow, f.Height))
	z := c.Height/2 - f.Height/2
	return csg.Translate(csg.Intersect(ring, gp.Solid()), 0, 0, z), nil
}

func fit(span, pitch float64) int {
	if span <= 0 || pitch <= 0 {
		return 0
	}
	return int(span/pitch + 1e-9)
}
