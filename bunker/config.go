// SPDX-License-Identifier: MIT
// Package: terrain/bunker
//
// config.go - the explicit configuration value shared by every stage.
//
// Design:
//   • Config is a plain value: stages receive a resolved copy and never read
//     each other's fields.
//   • Derived quantities (interior dims, floor thickness, wall angle) are
//     methods so that factories see exactly what the stages see.
//   • Inset may be negative (overhang); every derived formula branches on it.

package bunker

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrain/layout"
)

// Footprint is the outer body geometry.
type Footprint struct {
	Length, Width, Height float64
	Inset                 float64 // top inset per side; negative overhangs
	WallWidth             float64
	BaseHeight            float64
	FloorThickness        float64 // zero means WallWidth
	CornerChamfer         float64 // chamfer on the four corner edges; zero for none
}

// PanelGrid is the bay grid every wall feature is laid out on, plus the arch
// detail tunables of the panel overlay.
type PanelGrid struct {
	Length, Width, Padding float64

	ArchPaddingTop   float64
	ArchPaddingSides float64
	ArchInnerHeight  float64
	InnerArchTop     float64
	InnerArchSides   float64
}

// Pitch is the span one bay consumes when bays are counted.
func (p PanelGrid) Pitch() float64 { return p.Length + p.Padding }

// Spacing is the distance between neighboring bay centers.
func (p PanelGrid) Spacing() float64 { return p.Length + 2*p.Padding }

// Config is the explicit configuration of a bunker.
type Config struct {
	Footprint Footprint
	Panel     PanelGrid
}

// Dims is a length × width pair.
type Dims struct {
	Length, Width float64
}

// DefaultConfig returns the stock 100 × 100 × 75 bunker.
func DefaultConfig() Config {
	return Config{
		Footprint: Footprint{
			Length: DefaultLength, Width: DefaultWidth, Height: DefaultHeight,
			Inset: DefaultInset, WallWidth: DefaultWallWidth, BaseHeight: DefaultBaseHeight,
		},
		Panel: PanelGrid{
			Length: DefaultPanelLength, Width: DefaultPanelWidth, Padding: DefaultPanelPadding,
			ArchPaddingTop: 3, ArchPaddingSides: 3, ArchInnerHeight: 6,
			InnerArchTop: 5, InnerArchSides: 4,
		},
	}
}

// Floor returns the floor thickness, defaulting to the wall width.
func (c Config) Floor() float64 {
	if c.Footprint.FloorThickness > 0 {
		return c.Footprint.FloorThickness
	}
	return c.Footprint.WallWidth
}

// Interior returns the interior footprint. With an overhang (Inset < 0) the
// interior is measured from the bottom rectangle.
func (c Config) Interior() Dims {
	f := c.Footprint
	if f.Inset < 0 {
		return Dims{Length: f.Length - 2*f.WallWidth, Width: f.Width - 2*f.WallWidth}
	}
	return Dims{
		Length: f.Length - 2*(f.Inset+f.WallWidth),
		Width:  f.Width - 2*(f.Inset+f.WallWidth),
	}
}

// Angle is the wall slope in degrees (90 for a vertical wall).
func (c Config) Angle() float64 { return layout.Angle(c.Footprint.Inset, c.Footprint.Height) }

// Validate checks the footprint and panel grid.
// Complexity: O(1).
func (c Config) Validate() error {
	f := c.Footprint
	switch {
	case f.Length <= 0 || f.Width <= 0:
		return fmt.Errorf("length %g, width %g must be > 0: %w", f.Length, f.Width, ErrInvalidFootprint)
	case f.WallWidth <= 0:
		return fmt.Errorf("wall width %g must be > 0: %w", f.WallWidth, ErrInvalidFootprint)
	case f.Height <= f.WallWidth:
		return fmt.Errorf("height %g must exceed wall width %g: %w", f.Height, f.WallWidth, ErrInvalidFootprint)
	case f.BaseHeight < 0 || f.FloorThickness < 0:
		return fmt.Errorf("base %g, floor %g must be >= 0: %w", f.BaseHeight, f.FloorThickness, ErrInvalidFootprint)
	case c.Floor() >= f.Height:
		return fmt.Errorf("floor %g must be below height %g: %w", c.Floor(), f.Height, ErrInvalidFootprint)
	}
	if in := c.Interior(); in.Length <= 0 || in.Width <= 0 {
		return fmt.Errorf("inset %g leaves interior %g × %g: %w", f.Inset, in.Length, in.Width, ErrInvalidFootprint)
	}
	if f.CornerChamfer < 0 || f.CornerChamfer >= math.Min(f.Length, f.Width)/2 {
		return fmt.Errorf("corner chamfer %g outside [0, %g): %w",
			f.CornerChamfer, math.Min(f.Length, f.Width)/2, ErrInvalidFootprint)
	}
	p := c.Panel
	if p.Length <= 0 || p.Width <= 0 || p.Padding < 0 {
		return fmt.Errorf("panel %g × %g padding %g: %w", p.Length, p.Width, p.Padding, ErrInvalidStage)
	}
	if p.Padding >= f.Height {
		return fmt.Errorf("panel padding %g leaves no bay height: %w", p.Padding, ErrInvalidStage)
	}
	return nil
}
