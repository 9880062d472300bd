package part

import (
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// SplitDoor is a pointed-arch door of two leaves meeting on a toothed seam.
// Open slides the leaves apart into the wall; a bar runs along the sill.
type SplitDoor struct {
	Length, Width, Height float64
	BaseHeight            float64 // straight part of the arch below the springing line
	Open                  float64 // how far each leaf slides away from the center
	BarHeight             float64 // 0 disables the sill bar

	Teeth  int     // seam segments over the full height
	Divide float64 // half the seam's tooth depth

	terrain.Lifecycle
	door csg.Solid
}

// NewSplitDoor returns the stock 25 × 3.5 × 40 closed door.
func NewSplitDoor() *SplitDoor {
	return &SplitDoor{
		Length: 25, Width: 3.5, Height: 40, BaseHeight: 20,
		BarHeight: 1, Teeth: 5, Divide: 0.8,
	}
}

// Make builds both leaves and the bar inside the arch outline.
func (d *SplitDoor) Make() error {
	const method = "SplitDoor.Make"
	if err := validatePositive(method, "length", d.Length, "width", d.Width, "height", d.Height); err != nil {
		return err
	}
	switch {
	case d.BaseHeight < 0 || d.BaseHeight >= d.Height:
		return fmt.Errorf("%s: base height %g outside [0, %g): %w", method, d.BaseHeight, d.Height, ErrInvalidDimension)
	case d.Open < 0 || d.BarHeight < 0 || d.BarHeight >= d.Height:
		return fmt.Errorf("%s: open %g, bar %g: %w", method, d.Open, d.BarHeight, ErrInvalidDimension)
	case d.Teeth < 1 || d.Divide < 0 || d.Divide >= d.Length/4:
		return fmt.Errorf("%s: %d teeth of depth %g: %w", method, d.Teeth, 2*d.Divide, ErrInvalidDimension)
	}

	outline := PointedArch(d.Length, d.Width, d.Height, d.BaseHeight)
	groove := d.Width/2 - 0.01
	seg := d.Height / float64(d.Teeth)
	var right, left []csg.Solid
	for i := 0; i < d.Teeth; i++ {
		seam := d.Divide
		if i%2 == 0 {
			seam = -d.Divide
		}
		z := -d.Height/2 + seg*(float64(i)+0.5)
		r, err := csg.Chamfer(csg.Box(d.Length/2-seam, d.Width, seg), "<X", "|Z", groove)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		l, err := csg.Chamfer(csg.Box(d.Length/2+seam, d.Width, seg), ">X", "|Z", groove)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		right = append(right, csg.Translate(r, (seam+d.Length/2)/2, 0, z))
		left = append(left, csg.Translate(l, (seam-d.Length/2)/2, 0, z))
	}

	door := csg.Union(
		csg.Translate(csg.Union(right...), d.Open, 0, 0),
		csg.Translate(csg.Union(left...), -d.Open, 0, 0),
	)
	if d.BarHeight > 0 {
		bar := csg.Translate(csg.Box(d.Length, d.Width, d.BarHeight), 0, 0, -(d.Height/2 - d.BarHeight/2))
		door = csg.Union(door, bar)
	}
	d.door = csg.Intersect(outline, door)
	d.MarkMade()
	return nil
}

// Build returns the door centered on its local origin.
func (d *SplitDoor) Build() (csg.Solid, error) {
	if err := d.CheckMade("SplitDoor.Build"); err != nil {
		return nil, err
	}
	return d.door, nil
}
