// SPDX-License-Identifier: MIT
// Package: terrain/bunker
//
// options.go - functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*Bunker)).
//   • Option constructors validate and panic on meaningless inputs.
//     Make and Build never panic.
//   • A later option for the same stage kind replaces the earlier one.

package bunker

import "fmt"

// Option customizes a Bunker during New.
// Complexity: applying N options costs O(N).
type Option func(*Bunker)

// WithStages enables the given stages, replacing any stage of the same kind.
// Panics on a nil stage.
func WithStages(stages ...Stage) Option {
	for i, s := range stages {
		if s == nil {
			panic(fmt.Sprintf("bunker: WithStages: nil stage at %d", i))
		}
	}
	return func(b *Bunker) {
		for _, s := range stages {
			b.stages[s.Kind()] = s
		}
	}
}

// WithoutStages disables the given stage kinds.
func WithoutStages(kinds ...StageKind) Option {
	for _, k := range kinds {
		if k < 0 || k >= numKinds {
			panic(fmt.Sprintf("bunker: WithoutStages: %s", k))
		}
	}
	return func(b *Bunker) {
		for _, k := range kinds {
			b.stages[k] = nil
		}
	}
}

// WithPlateGap sets the body/roof clearance BuildPlate uses when the roof
// overhangs the body. Panics on a negative gap.
func WithPlateGap(gap float64) Option {
	if gap < 0 {
		panic(fmt.Sprintf("bunker: WithPlateGap(%g)", gap))
	}
	return func(b *Bunker) { b.plateGap = gap }
}
