package stl

import "errors"

var (
	// ErrEmptySolid indicates a nil solid or one with empty bounds.
	ErrEmptySolid = errors.New("stl: empty solid")
	// ErrTooManyCells indicates a voxel grid larger than the configured limit.
	ErrTooManyCells = errors.New("stl: too many cells")
)
