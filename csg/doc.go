// Package csg is the geometry kernel: immutable solids described by signed
// distance functions over gonum's spatial/r3 vectors, combined by booleans.
//
// What:
//
//   - Primitives: Box, Wedge (frustum between two axis-aligned rectangles),
//     Cylinder, Prism (convex polygon extruded along Z).
//   - Booleans: Union (also exposed as an addressable Compound), Cut, Intersect.
//   - Transforms: Translate, Rotate (right-hand rule, degrees, about an origin).
//   - Shell: hollow a solid to a wall thickness with its top face open.
//   - Edge finishing: Chamfer and Fillet on edges picked by a Selector.
//
// Why:
//
//	Terrain pieces are built by cutting and unioning many copies of a few
//	primitives. A distance function per node makes every boolean a min/max and
//	every transform a change of coordinates, so the tree stays cheap to build
//	and trivially immutable. Meshing (see package stl) only needs the sign.
//
// Conventions:
//
//   - Every primitive is centered on the origin with Z up.
//   - Distance is negative inside, positive outside. Values are exact for
//     points near single faces and conservative elsewhere; only the sign is
//     relied upon for meshing.
//   - Selector strings are stored verbatim (String returns the input).
//
// Selector language:
//
//	<X >X <Y >Y <Z >Z   features with minimum / maximum center along the axis
//	|X |Y |Z            edges parallel to, faces whose normal is perpendicular to, the axis
//	#X #Y #Z            edges perpendicular to the axis
//	+X -X X (Y, Z)      faces whose normal points along the signed axis
//	not, and, or, ( )   boolean combination; "" selects everything
//
// Complexity:
//
//	Distance on a tree of n nodes is O(n); Compound and Cut skip members whose
//	bounds do not contain the query point.
//
// Errors:
//
//	ErrBadSelector, ErrNoEdges, ErrEmptySolid; finish distances are checked
//	with terrain.ValidateFinish (terrain.ErrInvalidGeometryParameter).
package csg
