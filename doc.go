// Package terrain is a parametric generator for printable miniature terrain:
// bunkers, roofs, doors, floor tiling and catwalks, built from plain dimension
// and feature parameters.
//
// 🚀 What is terrain?
//
//	A small, deterministic CSG toolkit that brings together:
//		• Geometry kernel: signed-distance solids, booleans, rotations, shells
//		• Layout: angle solver, grid tiling, perimeter series, index masks
//		• Parts: blast doors, ladders, hatches, window frames, tiles
//		• Objects: bunker (with recursive roof) and catwalk pipelines
//		• Output: ASCII STL meshing, layout previews, a build catalog
//
// ✨ Why terrain?
//
//   - One perimeter engine – every wall feature tiles the same bays with the
//     same global index, so doors, windows and ladders share one numbering
//   - Cooperative masks – skip/keep lists partition bays between features
//   - Fixed assembly order – booleans are order-sensitive; the pipeline pins it
//
// Packages:
//
//	csg/       - geometry kernel: primitives, booleans, selectors, edge finishing
//	layout/    - Angle, Grid, Row, Perimeter (N,E,S,W), Mask
//	part/      - opaque sub-assemblies (BlastDoor, Ladder, Hatch, WindowFrame…)
//	roof/      - Flat and Detailed roofs (the engine, applied recursively)
//	bunker/    - configuration, stages, factories, composition pipeline
//	catwalk/   - walkway platform with staggered diamond tiles
//	recipe/    - YAML recipes and embedded presets
//	stl/       - voxel boundary mesher and ASCII STL writer
//	preview/   - top-down bay layout PNG
//	catalog/   - SQLite catalog of generated builds
//
// The root package holds what every object shares: the make/build lifecycle,
// the common sentinel errors and edge-finish validation.
//
// Bay numbering around a footprint (clockwise from the north-west corner):
//
//	      0   1   2   3
//	   ┌───────────────┐
//	13 │               │ 4
//	12 │               │ 5
//	11 │               │ 6
//	   └───────────────┘
//	     10   9   8   7
//
//	go get github.com/katalvlaran/terrain
package terrain
