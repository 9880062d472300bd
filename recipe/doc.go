// Package recipe turns YAML descriptions into configured terrain pieces.
//
// What:
//
//	A Recipe names one piece (a bunker or a catwalk), how to build it, and
//	only the parameters that differ from the stock piece. Every field is a
//	pointer: an absent key keeps the default, a present key overrides it.
//	Stage sections overlay the stage records of bunker.DefaultStages; a
//	section for a stage that is off by default turns it on, and
//	"enabled: false" turns a stage off.
//
//	    name: outpost
//	    kind: bunker
//	    build: plate
//	    footprint: {length: 140, width: 110, inset: 15, height: 65}
//	    stages:
//	      windows: {length: 18, height: 8, skip: []}
//	      doors: {panels: [0, 3]}
//	      roof: {style: flat, height: 4}
//
//	Decoding is strict: unknown keys are errors, so a misspelt parameter
//	never silently falls back to its default.
//
// Presets:
//
//	The recipes under presets/ are embedded. Preset(name) loads one and
//	Presets lists them.
//
// Errors:
//
//	ErrInvalidRecipe  malformed YAML, unknown keys, kind/build mismatch
//	ErrUnknownPreset  no embedded preset of that name
//	Geometry errors from Make surface unchanged (errors.Is works through).
package recipe
