package csg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// planeEps guards degenerate face normals.
const planeEps = 1e-12

// Face is a planar face of a convex polyhedron.
type Face struct {
	Normal r3.Vec  // outward unit normal
	Offset float64 // Normal·p == Offset on the face plane
	Center r3.Vec  // vertex centroid
}

// Signed distance from p to the face plane, positive on the outside.
func (f Face) eval(p r3.Vec) float64 {
	return r3.Dot(f.Normal, p) - f.Offset
}

// Edge is a straight edge shared by two faces of a convex polyhedron.
type Edge struct {
	A, B  r3.Vec
	Faces [2]int // indices into the owning polyhedron's Faces()
}

// Center returns the midpoint of the edge.
func (e Edge) Center() r3.Vec { return r3.Scale(0.5, r3.Add(e.A, e.B)) }

// Length returns |B-A|.
func (e Edge) Length() float64 { return r3.Norm(r3.Sub(e.B, e.A)) }

// Direction returns the unit vector from A to B.
func (e Edge) Direction() r3.Vec { return r3.Unit(r3.Sub(e.B, e.A)) }

// Polytope is a solid that exposes its faces, edges and vertices for finishing.
type Polytope interface {
	Solid
	Faces() []Face
	Edges() []Edge
	Vertices() []r3.Vec
}

// Polyhedron is a convex polyhedron: the intersection of its face half-spaces.
type Polyhedron struct {
	vertices []r3.Vec
	faces    []Face
	edges    []Edge
	bounds   Bounds
}

// Distance is the largest signed face-plane distance.
func (p *Polyhedron) Distance(q r3.Vec) float64 {
	d := math.Inf(-1)
	for _, f := range p.faces {
		if v := f.eval(q); v > d {
			d = v
		}
	}
	return d
}

// Bounds returns the vertex bounding box.
func (p *Polyhedron) Bounds() Bounds { return p.bounds }

// Faces returns a copy of the face list.
func (p *Polyhedron) Faces() []Face { return append([]Face(nil), p.faces...) }

// Edges returns a copy of the edge list.
func (p *Polyhedron) Edges() []Edge { return append([]Edge(nil), p.edges...) }

// Vertices returns a copy of the vertex list.
func (p *Polyhedron) Vertices() []r3.Vec { return append([]r3.Vec(nil), p.vertices...) }

// polyFace lists the vertex ring of one face and the outward normal to fall
// back on when the ring is degenerate.
type polyFace struct {
	ring []int
	hint r3.Vec
}

// newPolyhedron assembles faces from vertex rings and edges from face-index pairs.
func newPolyhedron(vs []r3.Vec, rings []polyFace, edges [][3]int) *Polyhedron {
	var centroid r3.Vec
	b := EmptyBounds()
	for _, v := range vs {
		centroid = r3.Add(centroid, v)
		b = b.Union(Bounds{Min: v, Max: v})
	}
	centroid = r3.Scale(1/float64(len(vs)), centroid)

	faces := make([]Face, len(rings))
	for i, pf := range rings {
		// Newell's method tolerates collinear leading vertices.
		var n, c r3.Vec
		for k, vi := range pf.ring {
			a, nb := vs[vi], vs[pf.ring[(k+1)%len(pf.ring)]]
			n.X += (a.Y - nb.Y) * (a.Z + nb.Z)
			n.Y += (a.Z - nb.Z) * (a.X + nb.X)
			n.Z += (a.X - nb.X) * (a.Y + nb.Y)
			c = r3.Add(c, a)
		}
		c = r3.Scale(1/float64(len(pf.ring)), c)
		if r3.Norm(n) < planeEps {
			n = pf.hint
		}
		n = r3.Unit(n)
		if r3.Dot(n, r3.Sub(c, centroid)) < 0 {
			n = r3.Scale(-1, n)
		}
		faces[i] = Face{Normal: n, Offset: r3.Dot(n, c), Center: c}
	}

	es := make([]Edge, len(edges))
	for i, e := range edges {
		es[i] = Edge{A: vs[e[0]], B: vs[e[1]], Faces: [2]int{e[2] >> 8, e[2] & 0xff}}
	}
	return &Polyhedron{vertices: vs, faces: faces, edges: es, bounds: b}
}

// Hexahedron face indices.
const (
	FaceBottom = iota
	FaceTop
	FaceWest  // -X
	FaceEast  // +X
	FaceSouth // -Y
	FaceNorth // +Y
)

func facePair(a, b int) int { return a<<8 | b }

// hexEdges lists the 12 edges as (vertexA, vertexB, facePair).
// Vertex order: bottom ring 0..3 then top ring 4..7, each (-,-) (+,-) (+,+) (-,+).
var hexEdges = [][3]int{
	{0, 1, facePair(FaceBottom, FaceSouth)},
	{1, 2, facePair(FaceBottom, FaceEast)},
	{2, 3, facePair(FaceBottom, FaceNorth)},
	{3, 0, facePair(FaceBottom, FaceWest)},
	{4, 5, facePair(FaceTop, FaceSouth)},
	{5, 6, facePair(FaceTop, FaceEast)},
	{6, 7, facePair(FaceTop, FaceNorth)},
	{7, 4, facePair(FaceTop, FaceWest)},
	{0, 4, facePair(FaceWest, FaceSouth)},
	{1, 5, facePair(FaceEast, FaceSouth)},
	{2, 6, facePair(FaceEast, FaceNorth)},
	{3, 7, facePair(FaceWest, FaceNorth)},
}

var hexFaces = []polyFace{
	{ring: []int{0, 3, 2, 1}, hint: r3.Vec{Z: -1}},
	{ring: []int{4, 5, 6, 7}, hint: r3.Vec{Z: 1}},
	{ring: []int{0, 4, 7, 3}, hint: r3.Vec{X: -1}},
	{ring: []int{1, 2, 6, 5}, hint: r3.Vec{X: 1}},
	{ring: []int{0, 1, 5, 4}, hint: r3.Vec{Y: -1}},
	{ring: []int{3, 7, 6, 2}, hint: r3.Vec{Y: 1}},
}

// hexahedron spans z in [-h/2, h/2]; bottom and top are [x0,x1]×[y0,y1] rectangles.
func hexahedron(h float64, bottom, top [4]float64) *Polyhedron {
	z0, z1 := -h/2, h/2
	ring := func(r [4]float64, z float64) []r3.Vec {
		return []r3.Vec{
			{X: r[0], Y: r[1], Z: z},
			{X: r[2], Y: r[1], Z: z},
			{X: r[2], Y: r[3], Z: z},
			{X: r[0], Y: r[3], Z: z},
		}
	}
	vs := append(ring(bottom, z0), ring(top, z1)...)
	return newPolyhedron(vs, hexFaces, hexEdges)
}

// Box returns a length×width×height box centered on the origin.
func Box(length, width, height float64) *Polyhedron {
	r := [4]float64{-length / 2, -width / 2, length / 2, width / 2}
	return hexahedron(height, r, r)
}

// Wedge returns a frustum whose bottom is a length×width rectangle centered on
// the origin and whose top rectangle spans [xMin,xMax]×[yMin,yMax] measured
// from the bottom rectangle's (-X,-Y) corner. A top larger than the bottom
// (negative inset) gives an overhang.
func Wedge(length, width, height, xMin, yMin, xMax, yMax float64) *Polyhedron {
	bottom := [4]float64{-length / 2, -width / 2, length / 2, width / 2}
	top := [4]float64{xMin - length/2, yMin - width/2, xMax - length/2, yMax - width/2}
	return hexahedron(height, bottom, top)
}

// InsetWedge is a Wedge whose top is inset by the same amount on all four sides.
func InsetWedge(length, width, height, inset float64) *Polyhedron {
	return Wedge(length, width, height, inset, inset, length-inset, width-inset)
}

// Prism extrudes a convex polygon in the XY plane to the given height,
// centered on z=0. Clockwise input is reoriented.
func Prism(points []r2.Vec, height float64) *Polyhedron {
	n := len(points)
	pts := append([]r2.Vec(nil), points...)
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	vs := make([]r3.Vec, 0, 2*n)
	for _, z := range []float64{-height / 2, height / 2} {
		for _, p := range pts {
			vs = append(vs, r3.Vec{X: p.X, Y: p.Y, Z: z})
		}
	}

	// Faces: 0 bottom, 1 top, 2+i side from point i to point i+1.
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = n - 1 - i
		top[i] = n + i
	}
	faces := []polyFace{{ring: bottom, hint: r3.Vec{Z: -1}}, {ring: top, hint: r3.Vec{Z: 1}}}
	var edges [][3]int
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := r2.Sub(pts[j], pts[i])
		faces = append(faces, polyFace{
			ring: []int{i, j, n + j, n + i},
			hint: r3.Vec{X: d.Y, Y: -d.X},
		})
		side := 2 + i
		prev := 2 + (i+n-1)%n
		edges = append(edges,
			[3]int{i, j, facePair(0, side)},
			[3]int{n + i, n + j, facePair(1, side)},
			[3]int{i, n + i, facePair(prev, side)},
		)
	}
	return newPolyhedron(vs, faces, edges)
}

// RegularPrism extrudes a regular polygon with the given circumradius. The
// first vertex sits at angle rotation (degrees) from +X.
func RegularPrism(sides int, radius, height, rotation float64) *Polyhedron {
	pts := make([]r2.Vec, sides)
	for i := range pts {
		a := (rotation + 360*float64(i)/float64(sides)) * math.Pi / 180
		pts[i] = r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return Prism(pts, height)
}

// boundsBox returns b as a box polyhedron.
func boundsBox(b Bounds) *Polyhedron {
	return hexahedron(b.Size().Z,
		[4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
		[4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}).shift(r3.Vec{Z: b.Center().Z})
}

// shift returns a copy of p translated by v, keeping its face and edge structure.
func (p *Polyhedron) shift(v r3.Vec) *Polyhedron {
	out := &Polyhedron{
		vertices: make([]r3.Vec, len(p.vertices)),
		faces:    make([]Face, len(p.faces)),
		edges:    make([]Edge, len(p.edges)),
		bounds:   p.bounds.Translate(v),
	}
	for i, x := range p.vertices {
		out.vertices[i] = r3.Add(x, v)
	}
	for i, f := range p.faces {
		out.faces[i] = Face{Normal: f.Normal, Offset: f.Offset + r3.Dot(f.Normal, v), Center: r3.Add(f.Center, v)}
	}
	for i, e := range p.edges {
		out.edges[i] = Edge{A: r3.Add(e.A, v), B: r3.Add(e.B, v), Faces: e.Faces}
	}
	return out
}

// Shift translates a polyhedron while keeping it a Polytope (Translate
// would hide its faces from the finishing operations).
func (p *Polyhedron) Shift(x, y, z float64) *Polyhedron {
	return p.shift(r3.Vec{X: x, Y: y, Z: z})
}

type cylinder struct {
	height, radius float64
}

// Cylinder returns a cylinder along Z centered on the origin.
func Cylinder(height, radius float64) Solid {
	return cylinder{height: height, radius: radius}
}

func (c cylinder) Distance(p r3.Vec) float64 {
	return math.Max(math.Hypot(p.X, p.Y)-c.radius, math.Abs(p.Z)-c.height/2)
}

func (c cylinder) Bounds() Bounds {
	return BoundsOf(r3.Vec{}, r3.Vec{X: 2 * c.radius, Y: 2 * c.radius, Z: c.height})
}

type frustum struct {
	height, bottom, top float64
}

// Frustum returns a truncated cone along Z centered on the origin, with the
// given bottom and top radii.
func Frustum(height, bottom, top float64) Solid {
	return frustum{height: height, bottom: bottom, top: top}
}

func (f frustum) Distance(p r3.Vec) float64 {
	k := (f.top - f.bottom) / f.height
	rz := f.bottom + k*(p.Z+f.height/2)
	side := (math.Hypot(p.X, p.Y) - rz) / math.Sqrt(1+k*k)
	return math.Max(side, math.Abs(p.Z)-f.height/2)
}

func (f frustum) Bounds() Bounds {
	r := math.Max(f.bottom, f.top)
	return BoundsOf(r3.Vec{}, r3.Vec{X: 2 * r, Y: 2 * r, Z: f.height})
}
