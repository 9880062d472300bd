// SPDX-License-Identifier: MIT
// Package: terrain/recipe
//
// recipe.go - the YAML document model and its decoding.
//
// Contract:
//   • Every parameter is a pointer; nil means "keep the stock value".
//   • Parse is strict (unknown keys fail) and validates Kind/Build pairing.
//   • An empty document is the stock bunker.

package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/roof"
)

const (
	methodParse    = "Parse"
	methodLoad     = "Load"
	methodValidate = "Validate"
)

// Kind is the piece a recipe describes.
type Kind string

const (
	KindBunker  Kind = "bunker"
	KindCatwalk Kind = "catwalk"
)

// Mode selects the Build method a recipe is rendered with.
type Mode string

const (
	ModeBuild Mode = "build" // body with the roof stacked on top
	ModeBody  Mode = "body"
	ModeRoof  Mode = "roof"
	ModePlate Mode = "plate" // body and roof side by side for printing
)

// Recipe is one piece and its overrides.
type Recipe struct {
	Name     string   `yaml:"name,omitempty"`
	Kind     Kind     `yaml:"kind,omitempty"`
	Build    Mode     `yaml:"build,omitempty"`
	PlateGap *float64 `yaml:"plate_gap,omitempty"`

	Footprint *Footprint `yaml:"footprint,omitempty"`
	Panel     *Panel     `yaml:"panel,omitempty"`
	Stages    *Stages    `yaml:"stages,omitempty"`

	Catwalk *Catwalk `yaml:"catwalk,omitempty"`
}

// Footprint overrides bunker.Footprint.
type Footprint struct {
	Length         *float64 `yaml:"length,omitempty"`
	Width          *float64 `yaml:"width,omitempty"`
	Height         *float64 `yaml:"height,omitempty"`
	Inset          *float64 `yaml:"inset,omitempty"`
	WallWidth      *float64 `yaml:"wall_width,omitempty"`
	BaseHeight     *float64 `yaml:"base_height,omitempty"`
	FloorThickness *float64 `yaml:"floor_thickness,omitempty"`
	CornerChamfer  *float64 `yaml:"corner_chamfer,omitempty"`
}

// Panel overrides bunker.PanelGrid.
type Panel struct {
	Length           *float64 `yaml:"length,omitempty"`
	Width            *float64 `yaml:"width,omitempty"`
	Padding          *float64 `yaml:"padding,omitempty"`
	ArchPaddingTop   *float64 `yaml:"arch_padding_top,omitempty"`
	ArchPaddingSides *float64 `yaml:"arch_padding_sides,omitempty"`
	ArchInnerHeight  *float64 `yaml:"arch_inner_height,omitempty"`
	InnerArchTop     *float64 `yaml:"inner_arch_top,omitempty"`
	InnerArchSides   *float64 `yaml:"inner_arch_sides,omitempty"`
}

// Toggle turns a section off with "enabled: false". A present section
// without the key is on.
type Toggle struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

func (t Toggle) off() bool { return t.Enabled != nil && !*t.Enabled }

// Stages overrides the bunker stage set.
type Stages struct {
	Interior  *Toggle    `yaml:"interior,omitempty"`
	Base      *Toggle    `yaml:"base,omitempty"`
	Panels    *Panels    `yaml:"panels,omitempty"`
	Pips      *Pips      `yaml:"pips,omitempty"`
	Windows   *Windows   `yaml:"windows,omitempty"`
	Doors     *Doors     `yaml:"doors,omitempty"`
	Floor     *Floor     `yaml:"floor,omitempty"`
	FloorCuts *FloorCuts `yaml:"floor_cuts,omitempty"`
	Ladders   *Ladders   `yaml:"ladders,omitempty"`
	Roof      *Roof      `yaml:"roof,omitempty"`
}

type Panels struct {
	Toggle  `yaml:",inline"`
	Details *bool `yaml:"details,omitempty"`
}

type Pips struct {
	Toggle  `yaml:",inline"`
	Magnets *bool    `yaml:"magnets,omitempty"`
	Radius  *float64 `yaml:"radius,omitempty"`
	Height  *float64 `yaml:"height,omitempty"`
	Padding *float64 `yaml:"padding,omitempty"`
}

type Windows struct {
	Toggle             `yaml:",inline"`
	Length             *float64 `yaml:"length,omitempty"`
	Height             *float64 `yaml:"height,omitempty"`
	Width              *float64 `yaml:"width,omitempty"`
	WidthOffset        *float64 `yaml:"width_offset,omitempty"`
	FrameWidth         *float64 `yaml:"frame_width,omitempty"`
	FrameChamfer       *float64 `yaml:"frame_chamfer,omitempty"`
	FrameChamferSelect *string  `yaml:"frame_chamfer_select,omitempty"`
	Skip               *[]int   `yaml:"skip,omitempty"`
	CutPadding         *float64 `yaml:"cut_padding,omitempty"`
	FillPadding        *float64 `yaml:"fill_padding,omitempty"`
}

type Doors struct {
	Toggle      `yaml:",inline"`
	Panels      *[]int   `yaml:"panels,omitempty"`
	Length      *float64 `yaml:"length,omitempty"`
	Width       *float64 `yaml:"width,omitempty"`
	Height      *float64 `yaml:"height,omitempty"`
	Fillet      *float64 `yaml:"fillet,omitempty"`
	CutPadding  *float64 `yaml:"cut_padding,omitempty"`
	FillPadding *float64 `yaml:"fill_padding,omitempty"`
}

type Floor struct {
	Toggle      `yaml:",inline"`
	Padding     *float64 `yaml:"padding,omitempty"`
	TileSize    *float64 `yaml:"tile_size,omitempty"`
	TileHeight  *float64 `yaml:"tile_height,omitempty"`
	TileChamfer *float64 `yaml:"tile_chamfer,omitempty"`
	MidTileSize *float64 `yaml:"mid_tile_size,omitempty"`
	TilePadding *float64 `yaml:"tile_padding,omitempty"`
	StaggerX    *float64 `yaml:"stagger_x,omitempty"`
	StaggerY    *float64 `yaml:"stagger_y,omitempty"`
}

type FloorCuts struct {
	Toggle  `yaml:",inline"`
	Panels  *[]int   `yaml:"panels,omitempty"`
	Length  *float64 `yaml:"length,omitempty"`
	Width   *float64 `yaml:"width,omitempty"`
	Chamfer *float64 `yaml:"chamfer,omitempty"`
}

type Ladders struct {
	Toggle     `yaml:",inline"`
	Panels     *[]int   `yaml:"panels,omitempty"`
	Length     *float64 `yaml:"length,omitempty"`
	ZTranslate *float64 `yaml:"z_translate,omitempty"`
}

type Roof struct {
	Toggle           `yaml:",inline"`
	Style            *roof.Style        `yaml:"style,omitempty"`
	Height           *float64           `yaml:"height,omitempty"`
	Inset            *float64           `yaml:"inset,omitempty"`
	Overflow         *float64           `yaml:"overflow,omitempty"`
	WallDetailsInset *float64           `yaml:"wall_details_inset,omitempty"`
	Operation        *terrain.Operation `yaml:"operation,omitempty"`
	ChamferFaces     *string            `yaml:"chamfer_faces,omitempty"`
	ChamferEdges     *string            `yaml:"chamfer_edges,omitempty"`
	TileSize         *float64           `yaml:"tile_size,omitempty"`
	TilePadding      *float64           `yaml:"tile_padding,omitempty"`
	TileHeight       *float64           `yaml:"tile_height,omitempty"`
	TileZOffset      *float64           `yaml:"tile_z_offset,omitempty"`
	HatchLength      *float64           `yaml:"hatch_length,omitempty"`
	HatchWidth       *float64           `yaml:"hatch_width,omitempty"`
	HatchRadius      *float64           `yaml:"hatch_radius,omitempty"`
	HatchHeight      *float64           `yaml:"hatch_height,omitempty"`
	PipHoleMod       *float64           `yaml:"pip_hole_mod,omitempty"`
	XTranslate       *float64           `yaml:"x_translate,omitempty"`
	ZTranslate       *float64           `yaml:"z_translate,omitempty"`
}

// Catwalk overrides catwalk.Catwalk.
type Catwalk struct {
	Length        *float64 `yaml:"length,omitempty"`
	Width         *float64 `yaml:"width,omitempty"`
	Height        *float64 `yaml:"height,omitempty"`
	BottomChamfer *float64 `yaml:"bottom_chamfer,omitempty"`

	Interior *CatwalkInterior `yaml:"interior,omitempty"`
	Magnets  *CatwalkMagnets  `yaml:"magnets,omitempty"`
	Walls    *CatwalkWalls    `yaml:"walls,omitempty"`
	Floor    *CatwalkFloor    `yaml:"floor,omitempty"`
}

type CatwalkInterior struct {
	Length     *float64 `yaml:"length,omitempty"`
	Width      *float64 `yaml:"width,omitempty"`
	Height     *float64 `yaml:"height,omitempty"`
	Overlap    *float64 `yaml:"overlap,omitempty"`
	FitPadding *float64 `yaml:"fit_padding,omitempty"`
}

type CatwalkMagnets struct {
	Toggle  `yaml:",inline"`
	Radius  *float64 `yaml:"radius,omitempty"`
	Height  *float64 `yaml:"height,omitempty"`
	Padding *float64 `yaml:"padding,omitempty"`
}

type CatwalkWalls struct {
	Toggle `yaml:",inline"`
	Length *float64 `yaml:"length,omitempty"`
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

type CatwalkFloor struct {
	Toggle      `yaml:",inline"`
	Height      *float64 `yaml:"height,omitempty"`
	TileSize    *float64 `yaml:"tile_size,omitempty"`
	TilePadding *float64 `yaml:"tile_padding,omitempty"`
	TileChamfer *float64 `yaml:"tile_chamfer,omitempty"`
}

// Parse decodes and validates one YAML recipe.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	r := new(Recipe)
	if err := dec.Decode(r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %w", methodParse, ErrInvalidRecipe, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads and parses the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}
	return r, nil
}

// Marshal encodes r back to YAML. Only the overrides are written.
func (r *Recipe) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Piece returns the kind, defaulting to a bunker.
func (r *Recipe) Piece() Kind {
	if r.Kind == "" {
		return KindBunker
	}
	return r.Kind
}

// Mode returns the build mode, defaulting to ModeBuild.
func (r *Recipe) Mode() Mode {
	if r.Build == "" {
		return ModeBuild
	}
	return r.Build
}

// Title is the recipe name, or the piece kind for an unnamed recipe.
func (r *Recipe) Title() string {
	if r.Name != "" {
		return r.Name
	}
	return string(r.Piece())
}

// Validate checks that the kind, the build mode and the sections agree.
func (r *Recipe) Validate() error {
	switch r.Piece() {
	case KindBunker:
		switch r.Mode() {
		case ModeBuild, ModeBody, ModeRoof, ModePlate:
		default:
			return fmt.Errorf("%s: build %q: %w", methodValidate, r.Build, ErrInvalidRecipe)
		}
		if r.Catwalk != nil {
			return fmt.Errorf("%s: catwalk section in a bunker recipe: %w", methodValidate, ErrInvalidRecipe)
		}
		if r.PlateGap != nil && *r.PlateGap < 0 {
			return fmt.Errorf("%s: plate gap %g < 0: %w", methodValidate, *r.PlateGap, ErrInvalidRecipe)
		}
	case KindCatwalk:
		if r.Mode() != ModeBuild {
			return fmt.Errorf("%s: catwalk build %q: %w", methodValidate, r.Build, ErrInvalidRecipe)
		}
		if r.Footprint != nil || r.Panel != nil || r.Stages != nil || r.PlateGap != nil {
			return fmt.Errorf("%s: bunker sections in a catwalk recipe: %w", methodValidate, ErrInvalidRecipe)
		}
	default:
		return fmt.Errorf("%s: kind %q: %w", methodValidate, r.Kind, ErrInvalidRecipe)
	}
	return nil
}
