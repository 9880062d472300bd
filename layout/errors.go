package layout

import "errors"

var (
	// ErrInvalidSeries indicates a row or perimeter that cannot be laid out:
	// nil unit, non-positive span or non-positive pitch.
	ErrInvalidSeries = errors.New("layout: invalid series")
	// ErrInvalidGrid indicates a grid with a nil tile, negative rows or
	// columns, or a non-positive pitch.
	ErrInvalidGrid = errors.New("layout: invalid grid")
)
