// SPDX-License-Identifier: MIT
// Package: terrain/stl
//
// options.go - functional options for meshing.
//
// Contract:
//   • Options panic on nonsense values; they are programmer errors.
//   • Zero options give DefaultResolution and DefaultMaxCells.

package stl

import "fmt"

const (
	// DefaultResolution is the cell edge in millimetres.
	DefaultResolution = 0.5
	// DefaultMaxCells bounds the voxel grid (and so memory and sampling time).
	DefaultMaxCells = 1 << 26
)

// Option customizes meshing.
type Option func(*config)

type config struct {
	resolution float64
	maxCells   int
}

func newConfig(opts []Option) config {
	cfg := config{resolution: DefaultResolution, maxCells: DefaultMaxCells}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithResolution sets the cell edge length. Panics if cell <= 0.
func WithResolution(cell float64) Option {
	if cell <= 0 {
		panic(fmt.Sprintf("stl: WithResolution(%g): cell must be > 0", cell))
	}
	return func(c *config) { c.resolution = cell }
}

// WithMaxCells sets the largest grid Mesh accepts. Panics if n <= 0.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("stl: WithMaxCells(%d): n must be > 0", n))
	}
	return func(c *config) { c.maxCells = n }
}
