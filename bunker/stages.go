// SPDX-License-Identifier: MIT
// Package: terrain/bunker
//
// stages.go - the optional pipeline stages as tagged variants.
//
// Contract:
//   • Stage is sealed: only the records in this package implement it.
//   • A stage reads the resolved Config and the env the orchestrator hands
//     it, never another stage.
//   • make returns an Output; nil solids mean "nothing to cut/add".

package bunker

import (
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
	"github.com/katalvlaran/terrain/roof"
)

// StageKind tags a stage variant.
type StageKind int

const (
	KindInterior StageKind = iota
	KindBase
	KindPanels
	KindPips
	KindWindows
	KindDoors
	KindFloor
	KindFloorCuts
	KindLadders
	KindRoof
	numKinds
)

var kindNames = [numKinds]string{
	"interior", "base", "panels", "pips", "windows", "doors", "floor", "floor cuts", "ladders", "roof",
}

// String returns the stage name.
func (k StageKind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("stage(%d)", int(k))
	}
	return kindNames[k]
}

// Stage is one optional pipeline step.
type Stage interface {
	Kind() StageKind
	make(e *env) (Output, error)
}

// Output is what a stage contributes to the body.
type Output struct {
	Cut     csg.Solid // removed in the cut phase
	Fill    csg.Solid // added in the overlay phase
	BaseCut csg.Solid // removed after the base is added (pip holes)
	Bays    []int     // bays occupied, in global index order

	nested *roof.Roof
}

// env is what the orchestrator hands every stage.
type env struct {
	cfg      Config
	interior Dims
	angle    float64
	// reserved is the union of bays claimed by doors and ladders.
	reserved layout.IndexSet

	// inputs resolved from sibling stages by the orchestrator
	tileHeight float64 // floor tile height, zero without a Floor stage
	hatchBays  []int
	roofTiles  bool
	holes      *Pips
}

// Interior hollows the body. The interior dims are always derived; the cut
// happens only when this stage is present.
type Interior struct{}

// Kind implements Stage.
func (*Interior) Kind() StageKind { return KindInterior }

// Base adds a slab under the body.
type Base struct{}

// Kind implements Stage.
func (*Base) Kind() StageKind { return KindBase }

// Panels cuts a sloped recess into every bay and, with Details, fills it with
// an arched overlay.
type Panels struct {
	Details bool
}

// Kind implements Stage.
func (*Panels) Kind() StageKind { return KindPanels }

// Pips places four corner pegs on top (or magnet holes with Magnets) and
// holes under the base in both modes.
type Pips struct {
	Magnets bool
	Radius  float64
	Height  float64
	Padding float64
}

// NewPips returns pegs of radius 1.55 and height 2.1.
func NewPips() *Pips { return &Pips{Radius: 1.55, Height: 2.1, Padding: 1.5} }

// Kind implements Stage.
func (*Pips) Kind() StageKind { return KindPips }

// Windows cuts window openings into every bay not skipped or reserved and
// fills them with frames.
type Windows struct {
	Length, Height float64
	Width          float64 // frame depth override; zero derives it from the inset
	WidthOffset    float64

	FrameWidth         float64
	FrameChamfer       float64
	FrameChamferSelect string

	Skip []int

	Cut         ComponentFactory
	CutPadding  float64
	Fill        ComponentFactory
	FillPadding float64
}

// NewWindows returns 15 × 20 windows skipping bay 0.
func NewWindows() *Windows {
	return &Windows{
		Length: 15, Height: 20, WidthOffset: -2,
		FrameWidth: 2, FrameChamfer: 1.6, FrameChamferSelect: "<Z or >Z",
		Skip: []int{0},
	}
}

// Kind implements Stage.
func (*Windows) Kind() StageKind { return KindWindows }

// Doors cuts door openings into the listed bays and fills them with blast doors.
type Doors struct {
	Panels                []int
	Length, Width, Height float64
	Fillet                float64

	Cut         ComponentFactory
	CutPadding  float64
	Fill        ComponentFactory
	FillPadding float64
}

// NewDoors returns 23 × 5 × 35 doors in bays 0 and 3.
func NewDoors() *Doors {
	return &Doors{Panels: []int{0, 3}, Length: 23, Width: 5, Height: 35, Fillet: 4}
}

// Kind implements Stage.
func (*Doors) Kind() StageKind { return KindDoors }

// Floor tiles the interior floor.
type Floor struct {
	Padding float64 // trimmed from the interior before tiling

	TileSize, TileHeight float64
	TileChamfer          float64
	MidTileSize          float64
	TilePadding          float64

	// StaggerX/StaggerY shift odd rows of the grid.
	StaggerX, StaggerY float64

	Tile ComponentFactory
}

// NewFloor returns the stock octagon floor.
func NewFloor() *Floor {
	t := part.NewOctagonTile()
	return &Floor{
		TileSize: t.Size, TileHeight: t.Height, TileChamfer: t.Chamfer,
		MidTileSize: t.MidSize, TilePadding: t.Padding,
	}
}

// Kind implements Stage.
func (*Floor) Kind() StageKind { return KindFloor }

// FloorCuts opens the floor, base and tiles in the listed bays.
type FloorCuts struct {
	Panels        []int
	Length, Width float64
	Chamfer       float64
}

// NewFloorCuts returns a 28 × 28 cut in bay 0.
func NewFloorCuts() *FloorCuts {
	return &FloorCuts{Panels: []int{0}, Length: 28, Width: 28, Chamfer: 3}
}

// Kind implements Stage.
func (*FloorCuts) Kind() StageKind { return KindFloorCuts }

// Ladders stands a ladder against the inner wall of the listed bays.
type Ladders struct {
	Panels     []int
	Length     float64
	ZTranslate float64
	// Customize may adjust the ladder before it is made.
	Customize func(l *part.Ladder)
}

// NewLadders returns a 20 wide ladder in bay 0.
func NewLadders() *Ladders { return &Ladders{Panels: []int{0}, Length: 20} }

// Kind implements Stage.
func (*Ladders) Kind() StageKind { return KindLadders }

// Roof builds the roof as a nested roof.Roof sized from the footprint.
type Roof struct {
	Style            roof.Style
	Height           float64
	Inset            float64
	Overflow         float64 // roof extends this far past the body top per side
	WallDetailsInset float64

	Operation    terrain.Operation
	ChamferFaces string
	ChamferEdges string

	TileSize, TilePadding, TileHeight float64
	TileZOffset                       float64

	HatchLength, HatchWidth, HatchRadius, HatchHeight float64

	// PipHoleMod grows or shrinks the roof pip holes.
	PipHoleMod float64

	// XTranslate and ZTranslate override the stacked roof placement.
	XTranslate *float64
	ZTranslate *float64
}

// NewRoof returns the stock detailed roof.
func NewRoof() *Roof {
	return &Roof{
		Style: roof.Detailed, Height: 18, Inset: -3, Overflow: 1, WallDetailsInset: -0.8,
		Operation: terrain.Chamfer, ChamferFaces: "+Z",
		TileSize: 21, TilePadding: 2, TileHeight: 1.5, TileZOffset: -1,
		HatchLength: 25, HatchWidth: 25, HatchRadius: 11, HatchHeight: 6,
		PipHoleMod: 1,
	}
}

// Kind implements Stage.
func (*Roof) Kind() StageKind { return KindRoof }

// DefaultStages returns the stages a stock bunker renders: every stage except
// pips and floor cuts.
func DefaultStages() []Stage {
	return []Stage{
		&Interior{}, &Base{}, &Panels{Details: true},
		NewWindows(), NewDoors(), NewFloor(), NewLadders(), NewRoof(),
	}
}
