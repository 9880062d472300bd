package part

import (
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// WindowFrame is a rectangular frame around a window opening. Width is the
// depth through the wall.
type WindowFrame struct {
	Length, Width, Height float64
	FrameWidth            float64

	Chamfer      float64
	ChamferFaces string // selector strings, passed to the kernel verbatim
	ChamferEdges string

	terrain.Lifecycle
	frame csg.Solid
}

// NewWindowFrame returns a frame with the stock 2 wide border and a 1.6
// chamfer on the top and bottom outer edges of its +Y face.
func NewWindowFrame(length, width, height float64) *WindowFrame {
	return &WindowFrame{
		Length: length, Width: width, Height: height, FrameWidth: 2,
		Chamfer: 1.6, ChamferFaces: "Y", ChamferEdges: "<Z or >Z",
	}
}

// Make builds the frame.
func (w *WindowFrame) Make() error {
	const method = "WindowFrame.Make"
	if err := validatePositive(method,
		"length", w.Length, "width", w.Width, "height", w.Height, "frame width", w.FrameWidth); err != nil {
		return err
	}
	if 2*w.FrameWidth >= w.Length || 2*w.FrameWidth >= w.Height {
		return fmt.Errorf("%s: frame width %g leaves no opening: %w", method, w.FrameWidth, ErrInvalidDimension)
	}
	outer, err := csg.Chamfer(csg.Box(w.Length, w.Width, w.Height), w.ChamferFaces, w.ChamferEdges, w.Chamfer)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	opening := csg.Box(w.Length-2*w.FrameWidth, w.Width+1, w.Height-2*w.FrameWidth)
	w.frame = csg.Cut(outer, opening)
	w.MarkMade()
	return nil
}

// Build returns the frame centered on its local origin.
func (w *WindowFrame) Build() (csg.Solid, error) {
	if err := w.CheckMade("WindowFrame.Build"); err != nil {
		return nil, err
	}
	return w.frame, nil
}
