package roof

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
)

// Wall detail geometry of the detailed roof. A detail is a panel flanked by
// half posts; copies butt together at wallDetailPitch.
const (
	wallDetailPitch   = 24
	wallPanelLength   = 20
	wallPostWidth     = 4
	wallArchDepth     = 5
	hatchCutTopBevel  = 3
	flatTileCutOffset = -1 // ZOffset below this cuts the tiles in
)

// Tiles configures the slotted roof tiles (part.SlotTile).
type Tiles struct {
	Enabled               bool
	Size, Padding, Height float64
	// ZOffset below -1 cuts the tiles into a flat roof instead of adding them.
	ZOffset float64
}

// Hatches configures the roof hatches. No panels means no hatches.
type Hatches struct {
	Panels                        []int
	Length, Width, Height, Radius float64
	ZTranslate                    float64
	// Floor opening under each hatch of a detailed roof.
	CutInset, CutChamfer float64
}

// Bays ties hatch placement to the bay numbering of the structure below.
type Bays struct {
	PanelLength, PanelPadding float64
	// SpanLength and SpanWidth count the bays; zero means the roof interior.
	SpanLength, SpanWidth float64
	// InteriorLength and InteriorWidth position the rows; zero means the
	// roof interior.
	InteriorLength, InteriorWidth float64
}

// Holes configures the pip/magnet holes under the roof.
type Holes struct {
	Enabled                bool
	Inset, Depth, Diameter float64
}

// Walls configures the recessed wall details of a detailed roof.
type Walls struct {
	DetailsInset, DetailsDepth, ArchFillet float64
}

// Roof is a flat or detailed roof. Set fields, call Make, then Build.
type Roof struct {
	Style                 Style
	Length, Width, Height float64
	Inset                 float64
	WallWidth             float64

	// Finish applied to the roof body before any other feature.
	Operation    terrain.Operation
	Chamfer      float64
	ChamferFaces string
	ChamferEdges string

	Tiles   Tiles
	Hatches Hatches
	Bays    Bays
	Holes   Holes
	Walls   Walls

	terrain.Lifecycle
	body, tiles, hatches, hatchCuts, holes csg.Solid
	wallCuts, wallDetails                 csg.Solid
	hatchBays                             []int
}

// New returns a 160 × 150 × 25 roof of the given style with stock tiles,
// hatches and wall details.
func New(style Style) *Roof {
	return &Roof{
		Style:  style,
		Length: 160, Width: 150, Height: 25,
		Operation:    terrain.Chamfer,
		ChamferFaces: "+Z",
		Tiles:        Tiles{Size: 21, Padding: 2, Height: 1.5, ZOffset: -1},
		Hatches: Hatches{
			Length: 25, Width: 25, Height: 6, Radius: 10.5,
			CutInset: 2, CutChamfer: 2,
		},
		Holes: Holes{Inset: 1.5, Depth: 1, Diameter: 2},
		Walls: Walls{DetailsInset: 3, DetailsDepth: 5, ArchFillet: 2},
	}
}

// TopLength is the footprint length of the finished body.
func (r *Roof) TopLength() float64 { return r.Length - 2*r.Inset }

// TopWidth is the footprint width of the finished body.
func (r *Roof) TopWidth() float64 { return r.Width - 2*r.Inset }

// Extent returns the largest x and y half extents of the roof body.
func (r *Roof) Extent() (halfLength, halfWidth float64) {
	if r.Style == Flat {
		return r.TopLength() / 2, r.TopWidth() / 2
	}
	return math.Max(r.Length, r.TopLength()) / 2, math.Max(r.Width, r.TopWidth()) / 2
}

// InteriorLength is the usable length inside the roof walls.
func (r *Roof) InteriorLength() float64 {
	return r.Length - 2*(r.Inset+r.WallWidth) - 2*r.Chamfer
}

// InteriorWidth is the usable width inside the roof walls.
func (r *Roof) InteriorWidth() float64 {
	return r.Width - 2*(r.Inset+r.WallWidth) - 2*r.Chamfer
}

// HatchBays returns the bay indices that received a hatch at Make.
func (r *Roof) HatchBays() []int { return append([]int(nil), r.hatchBays...) }

func (r *Roof) validate(method string) error {
	if r.Length <= 0 || r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%s: %g × %g × %g: %w", method, r.Length, r.Width, r.Height, ErrInvalidRoof)
	}
	if r.TopLength() <= 0 || r.TopWidth() <= 0 {
		return fmt.Errorf("%s: inset %g consumes %g × %g: %w", method, r.Inset, r.Length, r.Width, ErrInvalidRoof)
	}
	if r.WallWidth < 0 {
		return fmt.Errorf("%s: wall width %g < 0: %w", method, r.WallWidth, ErrInvalidRoof)
	}
	if err := terrain.ValidateFinish(method, r.Chamfer, r.Height); err != nil {
		return err
	}
	if r.Style == Detailed && (r.Walls.DetailsDepth <= 0 || r.Walls.DetailsDepth >= wallPanelLength) {
		return fmt.Errorf("%s: wall details depth %g outside (0, %d): %w",
			method, r.Walls.DetailsDepth, wallPanelLength, ErrInvalidRoof)
	}
	if r.Holes.Enabled && (r.Holes.Diameter <= 0 || r.Holes.Depth <= 0) {
		return fmt.Errorf("%s: hole %g × %g: %w", method, r.Holes.Diameter, r.Holes.Depth, ErrInvalidRoof)
	}
	return nil
}

// Make builds and memoizes every enabled feature.
func (r *Roof) Make() error {
	const method = "Roof.Make"
	r.Reset()
	if err := r.validate(method); err != nil {
		return err
	}
	r.body, r.tiles, r.hatches, r.hatchCuts, r.holes = nil, nil, nil, nil, nil
	r.wallCuts, r.wallDetails, r.hatchBays = nil, nil, nil

	var err error
	if r.body, err = r.makeBody(); err != nil {
		return fmt.Errorf("%s: body: %w", method, err)
	}
	if r.Tiles.Enabled {
		if r.tiles, err = r.makeTiles(); err != nil {
			return fmt.Errorf("%s: tiles: %w", method, err)
		}
	}
	if len(r.Hatches.Panels) > 0 {
		if err = r.makeHatches(); err != nil {
			return fmt.Errorf("%s: hatches: %w", method, err)
		}
	}
	if r.Holes.Enabled {
		r.holes = r.makeHoles()
	}
	if r.Style == Detailed {
		r.wallCuts = r.makeWallCuts()
		if r.wallDetails, err = r.makeWallDetails(); err != nil {
			return fmt.Errorf("%s: wall details: %w", method, err)
		}
	}
	r.MarkMade()
	return nil
}

// Build assembles the memoized features. It is idempotent.
func (r *Roof) Build() (csg.Solid, error) {
	if err := r.CheckMade("Roof.Build"); err != nil {
		return nil, err
	}
	if r.Style == Flat {
		return r.buildFlat(), nil
	}
	return r.buildDetailed(), nil
}

func (r *Roof) finish(s csg.Solid) (csg.Solid, error) {
	return csg.Finish{
		Op:       r.Operation,
		Faces:    r.ChamferFaces,
		Edges:    r.ChamferEdges,
		Distance: r.Chamfer,
	}.Apply(s)
}

// placeBays lays unit around the bay perimeter and keeps the hatch panels.
// halfDepth pulls each row inward so the unit sits inside the interior.
func (r *Roof) placeBays(unit csg.Solid, halfDepth, z float64) (*layout.Placement, error) {
	spanL, spanW := r.Bays.SpanLength, r.Bays.SpanWidth
	if spanL == 0 || spanW == 0 {
		spanL, spanW = r.InteriorLength(), r.InteriorWidth()
	}
	intL, intW := r.Bays.InteriorLength, r.Bays.InteriorWidth
	if intL == 0 || intW == 0 {
		intL, intW = r.InteriorLength(), r.InteriorWidth()
	}
	p := layout.Perimeter{
		Unit:       layout.Unit{Solid: unit, Length: r.Bays.PanelLength, Padding: r.Bays.PanelPadding},
		Length:     spanL,
		Width:      spanW,
		Spacing:    r.Bays.PanelLength + 2*r.Bays.PanelPadding,
		XTranslate: intL/2 - halfDepth,
		YTranslate: intW/2 - halfDepth,
		ZTranslate: z,
	}
	pl, err := p.Place()
	if err != nil {
		return nil, err
	}
	return layout.Mask{Keep: r.Hatches.Panels}.Apply(pl), nil
}

// fit is floor(span/pitch), never negative.
func fit(span, pitch float64) int {
	if span <= 0 || pitch <= 0 {
		return 0
	}
	return int(math.Floor(span/pitch + 1e-9))
}

func corners(s csg.Solid, x, y, z float64) csg.Solid {
	return csg.Union(
		csg.TranslateVec(s, r3.Vec{X: x, Y: y, Z: z}),
		csg.TranslateVec(s, r3.Vec{X: -x, Y: y, Z: z}),
		csg.TranslateVec(s, r3.Vec{X: -x, Y: -y, Z: z}),
		csg.TranslateVec(s, r3.Vec{X: x, Y: -y, Z: z}),
	)
}
