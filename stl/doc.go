// Package stl meshes a csg.Solid and writes it as an ASCII STL file.
//
// What:
//
//	The solid's bounds are split into cubic cells of a fixed resolution and
//	each cell center is sampled once. Every face an occupied cell shares with
//	an empty cell (or with the outside of the grid) becomes two triangles with
//	an outward normal. The result is a closed, axis-aligned staircase mesh
//	that slicers accept directly.
//
// Why:
//
//	Only the sign of the distance function is needed, so every solid the
//	generator produces meshes the same way, however many booleans and edge
//	finishes it carries. Print resolution is a single knob.
//
// Options:
//
//	WithResolution(mm)  cell edge length (default DefaultResolution)
//	WithMaxCells(n)     refuse grids above n cells (default DefaultMaxCells)
//
// Errors:
//
//	ErrEmptySolid    nil solid or empty bounds
//	ErrTooManyCells  the grid at this resolution exceeds the cell limit
package stl
