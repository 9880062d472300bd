// SPDX-License-Identifier: MIT
// Package: terrain/bunker
//
// bunker.go - the composition pipeline: Make memoizes every enabled stage in
// a fixed order, the Build* family assembles the memoized solids.
//
// Contract:
//   • Make validates Config first and fails fast on the first stage error,
//     leaving the Bunker unmade.
//   • Build* never re-runs a stage and returns the same solid on every call.
//   • Build* before Make returns terrain.ErrNotInitialized.

package bunker

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/internal/monitoring"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/roof"
)

// makeOrder is the order stages are made in; panel details and the roof
// follow it.
var makeOrder = [...]StageKind{
	KindInterior, KindBase, KindPanels, KindPips, KindWindows,
	KindDoors, KindFloor, KindFloorCuts, KindLadders,
}

// Bunker is a configured bunker. Edit Config and the stages, call Make, then
// any Build method.
type Bunker struct {
	Config Config

	stages   [numKinds]Stage
	plateGap float64

	terrain.Lifecycle
	body    csg.Solid
	outputs [numKinds]Output
	details csg.Solid
	roof    *roof.Roof
	bays    []Bay
}

// Bay describes one wall bay and what occupies it.
type Bay struct {
	Index  int
	Side   layout.Side
	Center r3.Vec // on the outer footprint edge, z = 0

	Door, Window, Ladder, FloorCut, Hatch bool
}

// New returns a bunker with cfg and no stages beyond those the options enable.
func New(cfg Config, opts ...Option) *Bunker {
	b := &Bunker{Config: cfg, plateGap: DefaultPlateGap}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Default returns the stock bunker: DefaultConfig with DefaultStages.
func Default() *Bunker {
	return New(DefaultConfig(), WithStages(DefaultStages()...))
}

// Stage returns the enabled stage of the given kind, or nil. The returned
// record may be edited before Make.
func (b *Bunker) Stage(kind StageKind) Stage {
	if kind < 0 || kind >= numKinds {
		return nil
	}
	return b.stages[kind]
}

// Make validates the config and memoizes every enabled stage.
// Complexity: O(bays + floor tiles) solids.
func (b *Bunker) Make() error {
	b.Reset()
	b.body, b.details, b.roof, b.bays = nil, nil, nil, nil
	b.outputs = [numKinds]Output{}

	if err := b.Config.Validate(); err != nil {
		return fmt.Errorf("%s: %w", MethodMake, err)
	}
	e := b.env()

	var err error
	if b.body, err = makeBody(e); err != nil {
		return fmt.Errorf("%s: body: %w", MethodMake, err)
	}
	for _, kind := range makeOrder {
		if err = b.makeStage(e, kind); err != nil {
			return err
		}
	}
	if p, ok := b.stages[KindPanels].(*Panels); ok {
		if b.details, err = p.makeDetails(e); err != nil {
			return stageErrorf(MethodMake, KindPanels, err)
		}
	}
	if b.stages[KindLadders] != nil {
		e.hatchBays = b.outputs[KindLadders].Bays
	}
	if err = b.makeStage(e, KindRoof); err != nil {
		return err
	}
	b.roof = b.outputs[KindRoof].nested

	if b.bays, err = b.bayTable(e); err != nil {
		return fmt.Errorf("%s: bays: %w", MethodMake, err)
	}
	b.MarkMade()
	return nil
}

// env resolves what every stage reads, including the cross-stage inputs.
func (b *Bunker) env() *env {
	e := &env{
		cfg:      b.Config,
		interior: b.Config.Interior(),
		angle:    b.Config.Angle(),
		reserved: layout.NewIndexSet(),
	}
	if d, ok := b.stages[KindDoors].(*Doors); ok {
		e.reserved = e.reserved.Union(layout.NewIndexSet(d.Panels...))
	}
	if l, ok := b.stages[KindLadders].(*Ladders); ok {
		e.reserved = e.reserved.Union(layout.NewIndexSet(l.Panels...))
	}
	if f, ok := b.stages[KindFloor].(*Floor); ok {
		e.roofTiles, e.tileHeight = true, f.TileHeight
	}
	if p, ok := b.stages[KindPips].(*Pips); ok {
		e.holes = p
	}
	return e
}

func (b *Bunker) makeStage(e *env, kind StageKind) error {
	s := b.stages[kind]
	if s == nil {
		return nil
	}
	start := time.Now()
	out, err := s.make(e)
	if err != nil {
		return stageErrorf(MethodMake, kind, err)
	}
	b.outputs[kind] = out
	monitoring.Logf("bunker: %s made in %s (%d bays)", kind, time.Since(start), len(out.Bays))
	return nil
}

// bayTable numbers the bay grid and records each stage's claims.
func (b *Bunker) bayTable(e *env) ([]Bay, error) {
	f := b.Config.Footprint
	pl, err := e.series(csg.Empty(), 0, r3.Vec{X: f.Length / 2, Y: f.Width / 2}, layout.Mask{})
	if err != nil {
		return nil, err
	}
	claims := func(kind StageKind) layout.IndexSet { return layout.NewIndexSet(b.outputs[kind].Bays...) }
	door, window, ladder := claims(KindDoors), claims(KindWindows), claims(KindLadders)
	floorCut, hatch := claims(KindFloorCuts), claims(KindRoof)

	out := make([]Bay, 0, pl.Len())
	for _, m := range pl.Members() {
		out = append(out, Bay{
			Index: m.Index, Side: m.Side, Center: m.Center,
			Door: door.Has(m.Index), Window: window.Has(m.Index), Ladder: ladder.Has(m.Index),
			FloorCut: floorCut.Has(m.Index), Hatch: hatch.Has(m.Index),
		})
	}
	return out, nil
}

// BuildBody assembles the body without the roof:
//
//	wedge − interior − panel bays − window cuts − door cuts − top pip holes
//	∪ base − base pip holes ∪ floor tiles − floor cuts
//	∪ panel details ∪ window frames ∪ doors ∪ ladders ∪ pegs
func (b *Bunker) BuildBody() (csg.Solid, error) {
	if err := b.CheckMade(MethodBuildBody); err != nil {
		return nil, err
	}
	o := &b.outputs
	s := csg.Cut(b.body,
		o[KindInterior].Cut, o[KindPanels].Cut, o[KindWindows].Cut, o[KindDoors].Cut, o[KindPips].Cut)
	s = csg.Cut(csg.Union(s, o[KindBase].Fill), o[KindPips].BaseCut)
	s = csg.Cut(csg.Union(s, o[KindFloor].Fill), o[KindFloorCuts].Cut)
	return csg.Union(s,
		b.details, o[KindWindows].Fill, o[KindDoors].Fill, o[KindLadders].Fill, o[KindPips].Fill), nil
}

// BuildRoof returns the roof alone, centered on its own origin.
func (b *Bunker) BuildRoof() (csg.Solid, error) {
	if err := b.CheckMade(MethodBuildRoof); err != nil {
		return nil, err
	}
	if b.roof == nil {
		return nil, fmt.Errorf("%s: no roof stage: %w", MethodBuildRoof, ErrInvalidStage)
	}
	return b.roof.Build()
}

// Build returns the body with the roof stacked on top. Without a Roof stage
// it is BuildBody.
func (b *Bunker) Build() (csg.Solid, error) {
	if err := b.CheckMade(MethodBuild); err != nil {
		return nil, err
	}
	return b.assemble(r3.Vec{})
}

// BuildPlate returns the body with the roof laid beside it, both standing on
// the same plane, ready for printing.
func (b *Bunker) BuildPlate() (csg.Solid, error) {
	if err := b.CheckMade(MethodBuildPlate); err != nil {
		return nil, err
	}
	return b.assemble(b.PlateOffset())
}

func (b *Bunker) assemble(shift r3.Vec) (csg.Solid, error) {
	body, err := b.BuildBody()
	if err != nil {
		return nil, err
	}
	if b.roof == nil {
		return body, nil
	}
	rs, err := b.roof.Build()
	if err != nil {
		return nil, err
	}
	return csg.Union(body, csg.TranslateVec(rs, r3.Add(b.RoofOffset(), shift))), nil
}

// RoofOffset is where Build places the roof center: the Roof stage's
// X/ZTranslate overrides, or centered on the body top.
func (b *Bunker) RoofOffset() r3.Vec {
	s, ok := b.stages[KindRoof].(*Roof)
	if !ok {
		return r3.Vec{}
	}
	var off r3.Vec
	if s.XTranslate != nil {
		off.X = *s.XTranslate
	}
	off.Z = b.Config.Footprint.Height/2 + s.Height/2
	if s.ZTranslate != nil {
		off.Z = *s.ZTranslate
	}
	return off
}

// PlateOffset is how far BuildPlate moves the roof from its stacked place:
// one body length along X and down onto the base plane. An overhanging roof
// is instead set its own half length plus the plate gap clear of the body.
func (b *Bunker) PlateOffset() r3.Vec {
	f := b.Config.Footprint
	off := r3.Vec{X: f.Length, Z: -(f.Height + f.BaseHeight)}
	if f.Inset <= 0 && b.roof != nil {
		hl, _ := b.roof.Extent()
		off.X = f.Length/2 + hl + b.plateGap
	}
	return off
}

// Bays returns the bay table recorded at Make.
func (b *Bunker) Bays() ([]Bay, error) {
	if err := b.CheckMade(MethodBays); err != nil {
		return nil, err
	}
	return append([]Bay(nil), b.bays...), nil
}
