package part

import (
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// BlastDoor is a filleted door slab with horizontal ribs and a center wheel.
type BlastDoor struct {
	Length, Width, Height float64
	Fillet                float64 // radius on the |Y edges

	RibCount    int
	RibHeight   float64
	RibDepth    float64 // how far ribs stand proud of each face
	WheelRadius float64 // 0 disables the wheel

	terrain.Lifecycle
	slab, ribs, wheel csg.Solid
}

// NewBlastDoor returns a door with the stock 23 × 5 × 35 dimensions.
func NewBlastDoor() *BlastDoor {
	return &BlastDoor{
		Length: 23, Width: 5, Height: 35, Fillet: 4,
		RibCount: 3, RibHeight: 2, RibDepth: 0.6, WheelRadius: 3.5,
	}
}

// Make builds the slab, ribs and wheel.
func (d *BlastDoor) Make() error {
	const method = "BlastDoor.Make"
	if err := validatePositive(method, "length", d.Length, "width", d.Width, "height", d.Height); err != nil {
		return err
	}
	if 2*d.Fillet >= d.Length || 2*d.Fillet >= d.Height {
		return fmt.Errorf("%s: fillet %g too large for %g × %g: %w", method, d.Fillet, d.Length, d.Height, ErrInvalidDimension)
	}

	slab, err := csg.Fillet(csg.Box(d.Length, d.Width, d.Height), "", "|Y", d.Fillet)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	d.slab = slab

	ribLen := d.Length - 2*d.Fillet
	ribs := make([]csg.Solid, 0, d.RibCount)
	for i := 0; i < d.RibCount && d.RibHeight > 0 && ribLen > 0; i++ {
		z := -d.Height/2 + float64(i+1)*d.Height/float64(d.RibCount+1)
		ribs = append(ribs, csg.Translate(csg.Box(ribLen, d.Width+2*d.RibDepth, d.RibHeight), 0, 0, z))
	}
	d.ribs = csg.Union(ribs...)

	d.wheel = csg.Empty()
	if d.WheelRadius > 0 {
		d.wheel = csg.Rotate(csg.Cylinder(d.Width+4*d.RibDepth, d.WheelRadius), csg.XAxis, 90)
	}
	d.MarkMade()
	return nil
}

// Build returns the door centered on its local origin.
func (d *BlastDoor) Build() (csg.Solid, error) {
	if err := d.CheckMade("BlastDoor.Build"); err != nil {
		return nil, err
	}
	return csg.Union(d.slab, d.ribs, d.wheel), nil
}
