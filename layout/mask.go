package layout

import "sort"

// Mask filters a placement by global index.
//
// Precedence: when Skip is non-empty it is the only filter (Keep is ignored);
// otherwise a non-empty Keep retains only the listed indices; with both empty
// the placement passes unchanged. Order and indices are preserved.
type Mask struct {
	Skip []int
	Keep []int
}

// Allows reports whether index i survives the mask.
func (m Mask) Allows(i int) bool {
	if len(m.Skip) > 0 {
		return !contains(m.Skip, i)
	}
	if len(m.Keep) > 0 {
		return contains(m.Keep, i)
	}
	return true
}

// Apply returns the filtered placement. Indices outside the placement are ignored.
func (m Mask) Apply(p *Placement) *Placement {
	if len(m.Skip) == 0 && len(m.Keep) == 0 {
		return p
	}
	var out []Member
	for _, mem := range p.Members() {
		if m.Allows(mem.Index) {
			out = append(out, mem)
		}
	}
	return &Placement{members: out}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// IndexSet is a set of bay indices.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding idx.
func NewIndexSet(idx ...int) IndexSet {
	s := make(IndexSet, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Union returns a new set with the members of s and o.
func (s IndexSet) Union(o IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(o))
	for i := range s {
		out[i] = struct{}{}
	}
	for i := range o {
		out[i] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
