package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
)

const methodRow = "Row"

// Row tiles Unit along +X across Span. Copies are centered as a group on x=0.
type Row struct {
	Unit Unit
	Span float64
	// Spacing between copy origins; zero means Unit.Pitch().
	Spacing float64
	// Override may replace the copy for a slot before it is positioned.
	Override func(slot int, s csg.Solid) csg.Solid
}

func (r Row) validate() error {
	if r.Unit.Solid == nil {
		return fmt.Errorf("%s: nil unit solid: %w", methodRow, ErrInvalidSeries)
	}
	if r.Span <= 0 {
		return fmt.Errorf("%s: span %g <= 0: %w", methodRow, r.Span, ErrInvalidSeries)
	}
	if r.Unit.Pitch() <= 0 {
		return fmt.Errorf("%s: pitch %g <= 0: %w", methodRow, r.Unit.Pitch(), ErrInvalidSeries)
	}
	if r.Spacing < 0 {
		return fmt.Errorf("%s: spacing %g < 0: %w", methodRow, r.Spacing, ErrInvalidSeries)
	}
	return nil
}

// Count returns floor(Span / pitch), or 0 when the row is invalid.
func (r Row) Count() int {
	if r.validate() != nil {
		return 0
	}
	return int(math.Floor(r.Span/r.Unit.Pitch() + countEps))
}

func (r Row) spacing() float64 {
	if r.Spacing > 0 {
		return r.Spacing
	}
	return r.Unit.Pitch()
}

// Positions returns the x offset of every copy, left to right.
func (r Row) Positions() []float64 {
	n := r.Count()
	out := make([]float64, n)
	s := r.spacing()
	for i := range out {
		out[i] = (float64(i) - float64(n-1)/2) * s
	}
	return out
}

// Place returns the positioned copies in slot order.
func (r Row) Place() ([]Member, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	pos := r.Positions()
	out := make([]Member, len(pos))
	for i, x := range pos {
		s := r.Unit.Solid
		if r.Override != nil {
			s = r.Override(i, s)
		}
		out[i] = Member{
			Index:  i,
			Slot:   i,
			Center: r3.Vec{X: x},
			Solid:  csg.Translate(s, x, 0, 0),
		}
	}
	return out, nil
}
