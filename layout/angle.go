package layout

import "math"

// Angle returns the wall angle in degrees for a wall whose top is pulled in by
// inset over the given height: degrees(acos(inset / hypot(inset, height))).
// A zero inset gives a vertical wall (90), a negative inset an overhang (>90).
// Degenerate legs (both zero) are treated as vertical.
func Angle(inset, height float64) float64 {
	if inset == 0 {
		return 90
	}
	hyp := math.Hypot(inset, height)
	return math.Acos(inset/hyp) * 180 / math.Pi
}
