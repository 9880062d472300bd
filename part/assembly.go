package part

import "github.com/katalvlaran/terrain/csg"

// Assembly is the make/build contract shared by every sub-assembly.
type Assembly interface {
	Make() error
	Build() (csg.Solid, error)
}

// MakeBuild runs Make then Build.
func MakeBuild(a Assembly) (csg.Solid, error) {
	if err := a.Make(); err != nil {
		return nil, err
	}
	return a.Build()
}
