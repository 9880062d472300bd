// SPDX-License-Identifier: MIT
// Package: terrain/bunker
//
// errors.go - sentinel errors for the bunker package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Stage failures are wrapped as "<Method>: <stage>: ...: %w".
//   • Errors returned by a ComponentFactory are passed through untouched.

package bunker

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
)

// ErrInvalidFootprint indicates footprint dimensions that cannot produce a
// body: non-positive length or width, height not above the wall width, or an
// inset that leaves no interior.
// Usage: if errors.Is(err, ErrInvalidFootprint) { /* fix Config.Footprint */ }.
var ErrInvalidFootprint = fmt.Errorf("bunker: invalid footprint: %w", terrain.ErrInvalidGeometryParameter)

// ErrInvalidStage indicates a stage whose parameters cannot be laid out, such
// as a window taller than the wall.
var ErrInvalidStage = errors.New("bunker: invalid stage")

// factoryError carries a ComponentFactory error out of a stage so the
// orchestrator can return it unwrapped.
type factoryError struct{ err error }

func (f *factoryError) Error() string { return f.err.Error() }
func (f *factoryError) Unwrap() error { return f.err }

// component runs an override factory, marking its error as pass-through.
func component(f ComponentFactory, cfg Config) (csg.Solid, error) {
	s, err := f.Component(cfg)
	if err != nil {
		return nil, &factoryError{err: err}
	}
	return s, nil
}

// stageErrorf wraps err with the method and stage context unless it came
// from a factory, which is returned as is.
func stageErrorf(method string, kind StageKind, err error) error {
	var fe *factoryError
	if errors.As(err, &fe) {
		return fe.err
	}
	return fmt.Errorf("%s: %s: %w", method, kind, err)
}
