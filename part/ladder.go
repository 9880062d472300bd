package part

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// Ladder is two rails joined by evenly spaced rungs. Width is the depth from
// the wall; the +Y face rests against it and rungs sit toward -Y.
type Ladder struct {
	Length, Width, Height float64

	RailWidth   float64
	RungHeight  float64
	RungDepth   float64
	RungSpacing float64
	RungPadding float64 // clearance above the top rung and below the bottom rung

	terrain.Lifecycle
	rails, rungs csg.Solid
}

// NewLadder returns a 20 wide, 5 deep ladder of the given height.
func NewLadder(height float64) *Ladder {
	return &Ladder{
		Length: 20, Width: 5, Height: height,
		RailWidth: 2, RungHeight: 1.5, RungDepth: 2, RungSpacing: 6, RungPadding: 4,
	}
}

// Rungs returns how many rungs fit.
func (l *Ladder) Rungs() int {
	usable := l.Height - 2*l.RungPadding
	if usable < 0 || l.RungSpacing <= 0 {
		return 0
	}
	return int(math.Floor(usable/l.RungSpacing)) + 1
}

// Make builds rails and rungs.
func (l *Ladder) Make() error {
	const method = "Ladder.Make"
	if err := validatePositive(method,
		"length", l.Length, "width", l.Width, "height", l.Height,
		"rail width", l.RailWidth, "rung spacing", l.RungSpacing); err != nil {
		return err
	}
	if 2*l.RailWidth >= l.Length {
		return fmt.Errorf("%s: rails %g wider than ladder %g: %w", method, 2*l.RailWidth, l.Length, ErrInvalidDimension)
	}

	x := l.Length/2 - l.RailWidth/2
	rail := csg.Box(l.RailWidth, l.Width, l.Height)
	l.rails = csg.Union(csg.Translate(rail, -x, 0, 0), csg.Translate(rail, x, 0, 0))

	rung := csg.Box(l.Length-2*l.RailWidth, l.RungDepth, l.RungHeight)
	y := -(l.Width/2 - l.RungDepth/2)
	var rungs []csg.Solid
	for i := 0; i < l.Rungs(); i++ {
		z := -l.Height/2 + l.RungPadding + float64(i)*l.RungSpacing
		rungs = append(rungs, csg.Translate(rung, 0, y, z))
	}
	l.rungs = csg.Union(rungs...)
	l.MarkMade()
	return nil
}

// Build returns the ladder centered on its local origin.
func (l *Ladder) Build() (csg.Solid, error) {
	if err := l.CheckMade("Ladder.Build"); err != nil {
		return nil, err
	}
	return csg.Union(l.rails, l.rungs), nil
}
