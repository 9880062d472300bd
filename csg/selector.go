package csg

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodParseSelector = "ParseSelector"
	dirTolerance        = 1e-6
	posTolerance        = 1e-6
)

// Selector picks faces or edges of a Polytope. The zero value selects all.
type Selector struct {
	raw  string
	root selNode
}

// feature is what a selector sees of a face or an edge.
type feature struct {
	center r3.Vec
	dir    r3.Vec // face normal or edge direction (unit)
	face   bool
}

type selNode interface {
	eval(fs []feature) []bool
}

// ParseSelector parses a selector expression. The empty string selects all.
func ParseSelector(s string) (Selector, error) {
	if strings.TrimSpace(s) == "" {
		return Selector{raw: s}, nil
	}
	p := &selParser{toks: tokenize(s)}
	n, err := p.expr()
	if err == nil && p.pos < len(p.toks) {
		err = fmt.Errorf("unexpected %q", p.toks[p.pos])
	}
	if err != nil {
		return Selector{}, fmt.Errorf("%s: %q: %v: %w", methodParseSelector, s, err, ErrBadSelector)
	}
	return Selector{raw: s, root: n}, nil
}

// MustSelector is ParseSelector for literals; it panics on a bad selector.
func MustSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// String returns the selector exactly as written.
func (s Selector) String() string { return s.raw }

// All reports whether s selects everything.
func (s Selector) All() bool { return s.root == nil }

func (s Selector) match(fs []feature) []bool {
	if s.root == nil {
		out := make([]bool, len(fs))
		for i := range out {
			out[i] = true
		}
		return out
	}
	return s.root.eval(fs)
}

// SelectFaces returns the indices of the faces of p matched by s.
func (s Selector) SelectFaces(p Polytope) []int {
	faces := p.Faces()
	fs := make([]feature, len(faces))
	for i, f := range faces {
		fs[i] = feature{center: f.Center, dir: f.Normal, face: true}
	}
	return indicesOf(s.match(fs))
}

// SelectEdges returns the indices of the edges of p matched by s.
func (s Selector) SelectEdges(p Polytope) []int {
	return selectEdges(s, p.Edges(), nil)
}

// selectEdges applies s to the edges whose index passes within (nil = all).
// Extremum atoms are resolved among those candidates only.
func selectEdges(s Selector, edges []Edge, within []bool) []int {
	var idx []int
	var fs []feature
	for i, e := range edges {
		if within != nil && !within[i] {
			continue
		}
		idx = append(idx, i)
		fs = append(fs, feature{center: e.Center(), dir: e.Direction()})
	}
	var out []int
	for k, ok := range s.match(fs) {
		if ok {
			out = append(out, idx[k])
		}
	}
	return out
}

func indicesOf(mask []bool) []int {
	var out []int
	for i, ok := range mask {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func tokenize(s string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

// selParser is a recursive-descent parser:
//
//	expr   := term { "or" term }
//	term   := factor { "and" factor }
//	factor := "not" factor | "(" expr ")" | atom
type selParser struct {
	toks []string
	pos  int
}

func (p *selParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

func (p *selParser) expr() (selNode, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for strings.EqualFold(p.peek(), "or") {
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = orNode{left, right}
	}
	return left, nil
}

func (p *selParser) term() (selNode, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for strings.EqualFold(p.peek(), "and") {
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = andNode{left, right}
	}
	return left, nil
}

func (p *selParser) factor() (selNode, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of selector")
	case strings.EqualFold(tok, "not"):
		p.pos++
		n, err := p.factor()
		if err != nil {
			return nil, err
		}
		return notNode{n}, nil
	case tok == "(":
		p.pos++
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("missing )")
		}
		p.pos++
		return n, nil
	}
	p.pos++
	return parseAtom(tok)
}

func parseAtom(tok string) (selNode, error) {
	var op byte
	body := tok
	if strings.ContainsRune("<>|#+-", rune(tok[0])) {
		op, body = tok[0], tok[1:]
	}
	if len(body) != 1 {
		return nil, fmt.Errorf("bad atom %q", tok)
	}
	var axis r3.Vec
	switch unicode.ToUpper(rune(body[0])) {
	case 'X':
		axis = XAxis
	case 'Y':
		axis = YAxis
	case 'Z':
		axis = ZAxis
	default:
		return nil, fmt.Errorf("bad axis in %q", tok)
	}
	return atomNode{op: op, axis: axis}, nil
}

type atomNode struct {
	op   byte // 0 for a bare axis
	axis r3.Vec
}

func (a atomNode) eval(fs []feature) []bool {
	out := make([]bool, len(fs))
	switch a.op {
	case '<', '>':
		if len(fs) == 0 {
			return out
		}
		best := math.Inf(1)
		if a.op == '>' {
			best = math.Inf(-1)
		}
		for _, f := range fs {
			v := r3.Dot(f.center, a.axis)
			if (a.op == '>' && v > best) || (a.op == '<' && v < best) {
				best = v
			}
		}
		tol := posTolerance * math.Max(1, math.Abs(best))
		for i, f := range fs {
			out[i] = math.Abs(r3.Dot(f.center, a.axis)-best) <= tol
		}
	case '|':
		for i, f := range fs {
			out[i] = math.Abs(math.Abs(r3.Dot(f.dir, a.axis))-1) <= dirTolerance
		}
	case '#':
		for i, f := range fs {
			out[i] = math.Abs(r3.Dot(f.dir, a.axis)) <= dirTolerance
		}
	default:
		sign := 1.0
		if a.op == '-' {
			sign = -1
		}
		for i, f := range fs {
			d, want := r3.Dot(f.dir, a.axis), sign
			if !f.face {
				// Edges have no orientation; a signed axis means parallel.
				d, want = math.Abs(d), 1
			}
			out[i] = math.Abs(d-want) <= dirTolerance
		}
	}
	return out
}

type notNode struct{ n selNode }

func (n notNode) eval(fs []feature) []bool {
	out := n.n.eval(fs)
	for i := range out {
		out[i] = !out[i]
	}
	return out
}

type andNode struct{ a, b selNode }

func (n andNode) eval(fs []feature) []bool {
	x, y := n.a.eval(fs), n.b.eval(fs)
	for i := range x {
		x[i] = x[i] && y[i]
	}
	return x
}

type orNode struct{ a, b selNode }

func (n orNode) eval(fs []feature) []bool {
	x, y := n.a.eval(fs), n.b.eval(fs)
	for i := range x {
		x[i] = x[i] || y[i]
	}
	return x
}
