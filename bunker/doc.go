// Package bunker generates a modular wargaming bunker: a sloped-wall body with
// wall bays holding windows, doors and ladders, a tiled floor and a removable
// roof.
//
// What:
//
//	A Bunker is an explicit Config (footprint + panel grid) plus an ordered
//	set of optional stages. Each stage is a tagged variant carrying its own
//	parameter record:
//
//	  Interior | Base | Panels | Pips | Windows | Doors | Floor | FloorCuts | Ladders | Roof
//
//	Stages that tile the walls share one bay grid: layout.Perimeter counted
//	over the footprint spans with pitch Panel.Length+Panel.Padding and spacing
//	Panel.Length+2·Panel.Padding, numbered north, east, south, west. Doors and
//	Ladders claim bays through keep-lists; the orchestrator unions their
//	claims into a reserved set, and Windows skip Skip ∪ reserved.
//
// Lifecycle:
//
//	b := bunker.Default()          // or New(cfg, WithStages(...))
//	b.Config.Footprint.Length = 140
//	if err := b.Make(); err != nil { ... }  // memoizes every stage once
//	s, err := b.Build()            // body ∪ roof, idempotent
//	p, err := b.BuildPlate()       // roof laid beside the body for printing
//
// Make order:
//
//	body → interior → base → panel bays → pips → windows → doors →
//	floor tiles → floor cuts → ladders → panel details → roof
//
// Assembly order (BuildBody):
//
//	wedge − interior − panel bays − window cuts − door cuts − top pip holes
//	∪ base − base pip holes ∪ floor tiles − floor cuts
//	∪ panel details ∪ window frames ∪ doors ∪ ladders ∪ pegs
//
// Overrides:
//
//	Windows, Doors and Floor accept a ComponentFactory that replaces the
//	built-in generator. Errors from a factory are returned unwrapped.
//
// Errors:
//
//	ErrInvalidFootprint (wraps terrain.ErrInvalidGeometryParameter) for bad
//	footprints, terrain.ErrNotInitialized for Build* before Make, and the
//	csg/part/roof sentinels from the stages, wrapped with the stage name.
//
// Concurrency:
//
//	A Bunker is not safe for concurrent use. Solids it returns are immutable,
//	and independent Bunker values may be made in parallel.
package bunker
