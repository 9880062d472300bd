package bunker

import "github.com/katalvlaran/terrain/csg"

// ComponentFactory builds a replacement component from the bunker config.
// The solid is placed on its bay the way the built-in one is, outward face
// +Y, except that door cuts and doors are not dropped to the door sill: the
// series places them at z = 0 and the factory sets their height. Errors are
// returned to the caller unwrapped.
type ComponentFactory interface {
	Component(cfg Config) (csg.Solid, error)
}

// FactoryFunc adapts a function to ComponentFactory.
type FactoryFunc func(cfg Config) (csg.Solid, error)

// Component calls f(cfg).
func (f FactoryFunc) Component(cfg Config) (csg.Solid, error) { return f(cfg) }
