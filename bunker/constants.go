// Package bunker defines the method names used in error context and the named
// tunables behind the placement formulas.
package bunker

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodMake is the canonical name for Bunker.Make.
	MethodMake = "Make"
	// MethodBuild is the canonical name for Bunker.Build.
	MethodBuild = "Build"
	// MethodBuildBody is the canonical name for Bunker.BuildBody.
	MethodBuildBody = "BuildBody"
	// MethodBuildRoof is the canonical name for Bunker.BuildRoof.
	MethodBuildRoof = "BuildRoof"
	// MethodBuildPlate is the canonical name for Bunker.BuildPlate.
	MethodBuildPlate = "BuildPlate"
	// MethodBays is the canonical name for Bunker.Bays.
	MethodBays = "Bays"
)

//-----------------------------------------------------------------------------
// Footprint Defaults
//-----------------------------------------------------------------------------

const (
	DefaultLength     = 100.0
	DefaultWidth      = 100.0
	DefaultHeight     = 75.0
	DefaultInset      = 10.0
	DefaultWallWidth  = 5.0
	DefaultBaseHeight = 3.0
)

//-----------------------------------------------------------------------------
// Panel Grid Defaults
//-----------------------------------------------------------------------------

const (
	DefaultPanelLength  = 28.0
	DefaultPanelWidth   = 6.0
	DefaultPanelPadding = 4.0
)

//-----------------------------------------------------------------------------
// Placement Tunables
//   Empirical offsets kept under names so they can be found and adjusted.
//-----------------------------------------------------------------------------

// DefaultPlateGap is the clearance between body and roof on a print plate
// when the roof overhangs the body (Inset <= 0).
const DefaultPlateGap = 2.0

// windowFlushAllowance widens a window frame beyond the wall when the wall is
// vertical (Inset == 0), so the frame stands proud of both faces.
const windowFlushAllowance = 2.0

// doorFlushFraction is the share of the door thickness that stands outside
// the interior face when the wall is vertical or overhangs (Inset <= 0).
const doorFlushFraction = 0.25
