package part

import (
	"math"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// PointedArch returns a Length × Width × Height opening whose lower BaseHeight
// is rectangular and whose top is a pointed (two-arc) arch. The arch axis is
// Y; the result is centered on its bounds.
func PointedArch(length, width, height, baseHeight float64) csg.Solid {
	if baseHeight >= height || baseHeight < 0 {
		return csg.Box(length, width, height)
	}
	rise := height - baseHeight
	springZ := -height/2 + baseHeight
	clip := csg.Translate(csg.Box(length, width, rise), 0, 0, springZ+rise/2)

	var crown csg.Solid
	if rise > length/2 {
		// Two arcs, each through a springing point and the apex.
		r := (length*length/4 + rise*rise) / length
		crown = csg.Intersect(csg.Intersect(yDisc(width, r, -length/2+r, springZ), yDisc(width, r, length/2-r, springZ)), clip)
	} else {
		// Too flat to point: one segmental arc.
		r := (length*length/4 + rise*rise) / (2 * rise)
		crown = csg.Intersect(yDisc(width, r, 0, springZ+rise-r), clip)
	}
	if baseHeight == 0 {
		return crown
	}
	base := csg.Translate(csg.Box(length, width, baseHeight), 0, 0, -height/2+baseHeight/2)
	return csg.Union(base, crown)
}

// yDisc is a cylinder of the given radius along Y, centered at (x, 0, z).
func yDisc(width, r, x, z float64) csg.Solid {
	return csg.Translate(csg.Rotate(csg.Cylinder(width, r), csg.XAxis, 90), x, 0, z)
}

// RoundArch returns a Length × Width × Height opening with a semicircular top
// of diameter Length, centered on its bounds.
func RoundArch(length, width, height float64) csg.Solid {
	r := length / 2
	straight := math.Max(height-r, 0)
	if straight == 0 {
		r = height
	}
	top := yDisc(width, r, 0, -height/2+straight)
	clip := csg.Box(length, width, height)
	body := csg.Translate(csg.Box(length, width, straight), 0, 0, -height/2+straight/2)
	if straight == 0 {
		return csg.Intersect(top, clip)
	}
	return csg.Intersect(csg.Union(body, top), clip)
}

// ArchPanel is the decorative wall bay overlay: a back plate with a raised
// pointed arch frame. Length/Width/Height are the bay dimensions.
type ArchPanel struct {
	Length, Width, Height float64

	PaddingTop   float64 // extra arch height above the bay
	PaddingSides float64 // extra arch width beyond the bay
	InnerHeight  float64 // arch springing height above mid-bay
	InnerTop     float64 // frame thickness at the crown
	InnerSides   float64 // frame thickness at the sides

	terrain.Lifecycle
	panel csg.Solid
}

// NewArchPanel returns a panel with the stock arch tunables.
func NewArchPanel(length, width, height float64) *ArchPanel {
	return &ArchPanel{
		Length: length, Width: width, Height: height,
		PaddingTop: 3, PaddingSides: 3, InnerHeight: 6, InnerTop: 5, InnerSides: 4,
	}
}

// Make builds the panel.
func (a *ArchPanel) Make() error {
	const method = "ArchPanel.Make"
	if err := validatePositive(method, "length", a.Length, "width", a.Width, "height", a.Height); err != nil {
		return err
	}
	l, w, h := a.Length, a.Width, a.Height
	archL := l + a.PaddingSides
	archH := h + a.PaddingTop
	spring := h/2 + a.InnerHeight

	outline := csg.Box(l, w, h)
	arch := csg.Translate(PointedArch(archL, w/2, archH, spring), 0, -w/4, 0)
	inner := PointedArch(archL-a.InnerSides, w, archH-a.InnerTop, spring-a.InnerSides)
	innerInner := csg.Translate(
		PointedArch(archL-a.InnerSides-3, w/2, archH-a.InnerTop-3, spring-a.InnerSides),
		0, w/4, -1.5)
	back := csg.Translate(csg.Box(l, w/2, h), 0, w/4, 0)

	detail := csg.Union(back, arch)
	insideArch := csg.Cut(back, innerInner)
	a.panel = csg.Union(csg.Cut(csg.Intersect(outline, detail), inner), insideArch)
	a.MarkMade()
	return nil
}

// Build returns the panel centered on its bay.
func (a *ArchPanel) Build() (csg.Solid, error) {
	if err := a.CheckMade("ArchPanel.Build"); err != nil {
		return nil, err
	}
	return a.panel, nil
}
