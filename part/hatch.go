package part

import (
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// Hatch is a round roof hatch on a square chamfered base, with a hinge on
// its +Y side.
type Hatch struct {
	Length, Width, Height float64

	BaseCornerChamfer float64
	BaseTopChamfer    float64
	BaseExtrude       float64 // skirt below the base

	Radius         float64
	LidHeight      float64
	LidChamfer     float64
	CrossBarWidth  float64
	InnerRingWidth float64

	terrain.Lifecycle
	base, cut, lid, hinge csg.Solid
}

// NewHatch returns a 25 × 25 × 4 hatch with a 10.5 radius lid.
func NewHatch() *Hatch {
	return &Hatch{
		Length: 25, Width: 25, Height: 4,
		BaseCornerChamfer: 2, BaseTopChamfer: 2, BaseExtrude: 1.5,
		Radius: 10.5, LidHeight: 1.5, LidChamfer: 0.8, CrossBarWidth: 4, InnerRingWidth: 2.5,
	}
}

// Make builds base, lid opening, lid and hinge.
func (h *Hatch) Make() error {
	const method = "Hatch.Make"
	if err := validatePositive(method,
		"length", h.Length, "width", h.Width, "height", h.Height,
		"radius", h.Radius, "lid height", h.LidHeight); err != nil {
		return err
	}
	baseH := h.Height - h.LidHeight
	if baseH <= 0 {
		return fmt.Errorf("%s: lid height %g >= height %g: %w", method, h.LidHeight, h.Height, ErrInvalidDimension)
	}
	if 2*h.Radius > h.Length || 2*h.Radius > h.Width {
		return fmt.Errorf("%s: lid radius %g does not fit %g × %g: %w", method, h.Radius, h.Length, h.Width, ErrInvalidDimension)
	}

	base, err := csg.Chamfer(csg.Box(h.Length, h.Width, baseH), "", "|Z", h.BaseCornerChamfer)
	if err != nil {
		return fmt.Errorf("%s: base: %w", method, err)
	}
	if h.BaseTopChamfer > 0 && h.BaseTopChamfer < baseH {
		if base, err = csg.Chamfer(base, "+Z", "", h.BaseTopChamfer); err != nil {
			return fmt.Errorf("%s: base top: %w", method, err)
		}
	}
	if h.BaseExtrude > 0 {
		skirt, err := csg.Chamfer(csg.Box(h.Length, h.Width, h.BaseExtrude), "", "|Z", h.BaseCornerChamfer)
		if err != nil {
			return fmt.Errorf("%s: skirt: %w", method, err)
		}
		base = csg.Union(base, csg.Translate(skirt, 0, 0, -baseH/2-h.BaseExtrude/2))
	}
	h.base = csg.Translate(base, 0, 0, -h.LidHeight/2)
	h.cut = csg.Translate(csg.Cylinder(baseH, h.Radius-2), 0, 0, -h.LidHeight/2)

	// Lid: a disc with a chamfered rim and a recessed cross on both faces.
	rim := h.LidChamfer
	if rim >= h.LidHeight {
		rim = 0
	}
	disc := csg.Union(
		csg.Translate(csg.Cylinder(h.LidHeight-rim, h.Radius), 0, 0, -rim/2),
		csg.Translate(csg.Frustum(rim, h.Radius, h.Radius-rim), 0, 0, h.LidHeight/2-rim/2),
	)
	if rim == 0 {
		disc = csg.Cylinder(h.LidHeight, h.Radius)
	}
	innerR := h.Radius - h.InnerRingWidth
	recess := csg.Cut(
		csg.Cylinder(h.LidHeight/3, innerR),
		csg.Box(2*innerR, h.CrossBarWidth, h.LidHeight),
	)
	top := csg.Translate(recess, 0, 0, h.LidHeight/3)
	bottom := csg.Rotate(top, csg.YAxis, 180)
	h.lid = csg.Translate(csg.Cut(disc, top, bottom), 0, 0, baseH/2)

	hingeBlock, err := csg.Fillet(csg.Box(4, 4, h.LidHeight+1), "", "|X", 1)
	if err != nil {
		return fmt.Errorf("%s: hinge: %w", method, err)
	}
	pin := csg.Translate(csg.Rotate(csg.Cylinder(4.6, 0.5), csg.YAxis, 90), 0, 1, 0.4)
	h.hinge = csg.Translate(csg.Union(hingeBlock, pin), 0, h.Radius, h.Height/2-h.LidHeight/2-0.5)

	h.MarkMade()
	return nil
}

// Build returns base − opening ∪ lid ∪ hinge.
func (h *Hatch) Build() (csg.Solid, error) {
	if err := h.CheckMade("Hatch.Build"); err != nil {
		return nil, err
	}
	return csg.Union(csg.Cut(h.base, h.cut), h.lid, h.hinge), nil
}
