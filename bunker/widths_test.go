package bunker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedWidths(t *testing.T) {
	cases := []struct {
		inset               float64
		windowCut, frame    float64
		doorCut, doorOffset float64
	}{
		{inset: -3, windowCut: 8, frame: 3, doorCut: 8, doorOffset: 1.25},
		{inset: 0, windowCut: 5, frame: 5 + windowFlushAllowance, doorCut: 5, doorOffset: 1.25},
		{inset: 15, windowCut: 20, frame: 15, doorCut: 20, doorOffset: 5},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("inset %g", tc.inset), func(t *testing.T) {
			f := Footprint{Length: 140, Width: 110, Height: 75, Inset: tc.inset, WallWidth: 5}
			w, d := NewWindows(), NewDoors()
			assert.Equal(t, tc.windowCut, w.cutWidth(f), "window cut")
			assert.Equal(t, tc.frame, w.frameWidth(f), "frame depth")
			assert.Equal(t, tc.doorCut, d.cutWidth(f), "door cut")
			assert.Equal(t, tc.doorOffset, d.fillOffset(f), "door offset")

			w.Width = 4
			assert.Equal(t, 4.0, w.frameWidth(f), "explicit frame width wins")
		})
	}
}
