package csg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
)

const methodFinish = "Finish"

// Finish describes an edge finish: which faces, which of their edges, how much.
type Finish struct {
	Op       terrain.Operation
	Faces    string // face selector; "" means every face
	Edges    string // edge selector applied to the edges of the selected faces
	Distance float64
}

// Apply finishes s. A zero distance returns s unchanged. Solids that are not a
// Polytope are finished on the edges of their bounding box.
func (f Finish) Apply(s Solid) (Solid, error) {
	if f.Distance == 0 {
		return s, nil
	}
	if IsEmpty(s) {
		return nil, fmt.Errorf("%s: %w", methodFinish, ErrEmptySolid)
	}
	faceSel, err := ParseSelector(f.Faces)
	if err != nil {
		return nil, fmt.Errorf("%s: faces: %w", methodFinish, err)
	}
	edgeSel, err := ParseSelector(f.Edges)
	if err != nil {
		return nil, fmt.Errorf("%s: edges: %w", methodFinish, err)
	}

	poly, ok := s.(Polytope)
	if !ok {
		poly = boundsBox(s.Bounds())
	}
	faces, edges := poly.Faces(), poly.Edges()

	var within []bool
	if !faceSel.All() {
		picked := make(map[int]bool)
		for _, i := range faceSel.SelectFaces(poly) {
			picked[i] = true
		}
		within = make([]bool, len(edges))
		for i, e := range edges {
			within[i] = picked[e.Faces[0]] || picked[e.Faces[1]]
		}
	}
	sel := selectEdges(edgeSel, edges, within)
	if len(sel) == 0 {
		return nil, fmt.Errorf("%s: faces %q edges %q: %w", methodFinish, f.Faces, f.Edges, ErrNoEdges)
	}

	vs := poly.Vertices()
	limit := math.Inf(1)
	frames := make([][2]Face, len(sel))
	for k, i := range sel {
		e := edges[i]
		frames[k] = [2]Face{faces[e.Faces[0]], faces[e.Faces[1]]}
		for _, fc := range frames[k] {
			if w := faceSpan(fc, e, vs); w > planeTolerance {
				limit = math.Min(limit, w)
			}
		}
	}
	if err := terrain.ValidateFinish(methodFinish+" "+f.Op.String(), f.Distance, limit); err != nil {
		return nil, err
	}

	switch f.Op {
	case terrain.Chamfer, terrain.Fillet:
	default:
		return nil, fmt.Errorf("%s: %s: %w", methodFinish, f.Op, terrain.ErrUnsupportedOperation)
	}
	return &finished{child: s, op: f.Op, d: f.Distance, frames: frames}, nil
}

// planeTolerance is how far a vertex may sit off a face plane and still belong to it.
const planeTolerance = 1e-6

// faceSpan is how far face f reaches away from edge e: the width of the face's
// vertices measured in its plane, perpendicular to the edge.
func faceSpan(f Face, e Edge, vs []r3.Vec) float64 {
	across := r3.Cross(f.Normal, e.Direction())
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.Abs(f.eval(v)) > planeTolerance {
			continue
		}
		d := r3.Dot(across, v)
		lo, hi = math.Min(lo, d), math.Max(hi, d)
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}

// Chamfer bevels the selected edges of s by d.
func Chamfer(s Solid, faces, edges string, d float64) (Solid, error) {
	return Finish{Op: terrain.Chamfer, Faces: faces, Edges: edges, Distance: d}.Apply(s)
}

// Fillet rounds the selected edges of s with radius r.
func Fillet(s Solid, faces, edges string, r float64) (Solid, error) {
	return Finish{Op: terrain.Fillet, Faces: faces, Edges: edges, Distance: r}.Apply(s)
}

type finished struct {
	child  Solid
	op     terrain.Operation
	d      float64
	frames [][2]Face
}

func (f *finished) Distance(p r3.Vec) float64 {
	v := f.child.Distance(p)
	for _, fr := range f.frames {
		u, w := fr[0].eval(p), fr[1].eval(p)
		switch f.op {
		case terrain.Chamfer:
			v = math.Max(v, (u+w+f.d)/math.Sqrt2)
		case terrain.Fillet:
			if u > -f.d && w > -f.d {
				v = math.Max(v, math.Hypot(u+f.d, w+f.d)-f.d)
			}
		}
	}
	return v
}

func (f *finished) Bounds() Bounds { return f.child.Bounds() }
