// Package layout places copies of a solid: along a row, around the four sides
// of a rectangular footprint, or on a (staggered) grid. It also holds the
// angle solver and the index mask that lets several wall features share the
// same perimeter bays.
//
// What:
//
//   - Angle(inset, height): wall slope in degrees from an inset and a height.
//   - Row: floor(span/pitch) copies centered on the span midpoint.
//   - Perimeter + Cardinal: two rows placed on the North, East, South and West
//     sides with one global index, clockwise from the north-west corner.
//   - Mask: skip/keep filtering of a Placement; skip wins.
//   - Grid: rows × columns with per-axis pitch and optional parity stagger.
//
// Why:
//
//	Doors, windows, ladders and panel details are separate features that must
//	land on exactly the same bays. They all run the same Perimeter with the
//	same span and pitch, so bay i means the same wall slot for every feature;
//	masks then hand each bay to one feature.
//
// Determinism:
//
//   - Row order is left to right along +X in template space.
//   - Global order is North (W→E), East (N→S), South (E→W), West (S→N).
//   - Grid cells are enumerated row-major.
//
// Complexity:
//
//	Row, Perimeter, Mask and Grid are O(n) in the number of placed copies.
//
// Errors:
//
//	ErrInvalidSeries  nil unit, non-positive span or pitch.
//	ErrInvalidGrid    nil tile, negative rows/columns, non-positive pitch.
package layout
