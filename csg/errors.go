package csg

import "errors"

var (
	// ErrBadSelector indicates a selector string that does not parse.
	ErrBadSelector = errors.New("csg: bad selector")
	// ErrNoEdges indicates an edge finish whose selectors matched no edge.
	ErrNoEdges = errors.New("csg: selection matched no edges")
	// ErrEmptySolid indicates an operation that needs a non-empty solid.
	ErrEmptySolid = errors.New("csg: empty solid")
)
