// Package roof builds the removable roof that sits on a bunker.
//
// What:
//
//	Two styles share one parameter set:
//	  • Flat: a (L-2·inset) × (W-2·inset) × H slab with an optional finish on
//	    its top edges, roof tiles on (or cut into) the top, hatches on top and
//	    pip/magnet holes underneath.
//	  • Detailed: an inset wedge hollowed into an open-top tray of wall
//	    thickness WallWidth. Tiles and hatches sit on the tray floor, hatch
//	    openings go through the floor, and each outer wall is recessed and
//	    refilled with a row of arched panels.
//
// Why:
//
//	The roof is a second, smaller instance of the perimeter composition used
//	for the bunker walls. Hatches are laid out with the same layout.Perimeter
//	bay numbering as the bunker's ladders, so passing the ladder bays as
//	HatchPanels (and the bunker spans as Bays) puts every hatch over a ladder.
//
// Lifecycle:
//
//	r := roof.New(roof.Detailed)
//	r.Length, r.Width = 114, 84
//	if err := r.Make(); err != nil { ... }
//	solid, err := r.Build()
//
// Errors:
//
//	ErrInvalidRoof for bad dimensions (wraps terrain.ErrInvalidGeometryParameter),
//	ErrUnknownStyle for unparseable style names, terrain.ErrNotInitialized
//	for Build before Make. Finish failures surface the csg sentinels.
package roof
