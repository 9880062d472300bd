// Package preview draws a top-down map of a made bunker's bays: the footprint
// and roof outlines, every bay center marked by what claimed it, and the
// global bay index beside each marker.
//
// It is a checking aid for layouts: the index a Skip or Keep list names is
// printed where that bay sits on the wall.
package preview

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/terrain/bunker"
)

// DefaultSize is the width and height of a rendered preview.
const DefaultSize = 6 * vg.Inch

// Claim is what occupies a bay on the preview. A bay with several claims is
// drawn as the first that applies, in declaration order.
type Claim int

const (
	ClaimDoor Claim = iota
	ClaimLadder
	ClaimWindow
	ClaimOpen
	numClaims
)

var claimNames = [numClaims]string{"door", "ladder", "window", "open"}

var claimColors = [numClaims]color.Color{
	color.RGBA{R: 200, G: 60, B: 40, A: 255},
	color.RGBA{R: 40, G: 120, B: 200, A: 255},
	color.RGBA{R: 60, G: 160, B: 70, A: 255},
	color.Gray{Y: 140},
}

func (c Claim) String() string {
	if c < 0 || c >= numClaims {
		return "Claim(" + strconv.Itoa(int(c)) + ")"
	}
	return claimNames[c]
}

// ClaimOf returns how bay is drawn.
func ClaimOf(bay bunker.Bay) Claim {
	switch {
	case bay.Door:
		return ClaimDoor
	case bay.Ladder:
		return ClaimLadder
	case bay.Window:
		return ClaimWindow
	}
	return ClaimOpen
}

// Plot builds the bay map of a made bunker.
func Plot(b *bunker.Bunker) (*plot.Plot, error) {
	bays, err := b.Bays()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	f := b.Config.Footprint

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bunker %g × %g, %d bays", f.Length, f.Width, len(bays))
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	outline, err := plotter.NewLine(rect(f.Length/2, f.Width/2))
	if err != nil {
		return nil, err
	}
	outline.Width = vg.Points(1)
	p.Add(outline)
	if f.Inset > 0 && f.Inset < f.Length/2 && f.Inset < f.Width/2 {
		top, err := plotter.NewLine(rect(f.Length/2-f.Inset, f.Width/2-f.Inset))
		if err != nil {
			return nil, err
		}
		top.Width = vg.Points(0.5)
		top.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(top)
	}

	var groups [numClaims]plotter.XYs
	all := make(plotter.XYs, 0, len(bays))
	names := make([]string, 0, len(bays))
	for _, bay := range bays {
		xy := plotter.XY{X: bay.Center.X, Y: bay.Center.Y}
		c := ClaimOf(bay)
		groups[c] = append(groups[c], xy)
		all = append(all, xy)
		names = append(names, strconv.Itoa(bay.Index))
	}
	for c, pts := range groups {
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = claimColors[c]
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(Claim(c).String(), sc)
	}
	if len(all) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: all, Labels: names})
		if err != nil {
			return nil, err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = draw.XCenter
		}
		labels.Offset = vg.Point{Y: vg.Points(6)}
		p.Add(labels)
	}
	p.Legend.Top = true
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Render writes the bay map of b to w as a square image in format, one of the
// formats plot.WriterTo accepts ("png", "svg", "pdf", ...).
func Render(w io.Writer, b *bunker.Bunker, size vg.Length, format string) error {
	p, err := Plot(b)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders the bay map of b to path at DefaultSize; the file extension
// picks the format.
func Save(path string, b *bunker.Bunker) error {
	p, err := Plot(b)
	if err != nil {
		return err
	}
	return p.Save(DefaultSize, DefaultSize, path)
}

// rect is the closed outline of a rectangle with the given half extents.
func rect(hx, hy float64) plotter.XYs {
	return plotter.XYs{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}, {X: -hx, Y: -hy}}
}
