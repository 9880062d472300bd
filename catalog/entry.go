package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/recipe"
)

// Entry is one recorded build.
type Entry struct {
	ID     uuid.UUID
	Name   string
	Kind   string // recipe.Kind
	Mode   string // recipe.Mode
	Recipe []byte // YAML the build was made from
	Size   r3.Vec // bounding box extent of the built solid
	Facets int    // zero when the build was not meshed
	File   string // output path, empty when not written

	CreatedAt time.Time

	Bays []Bay // nil for catwalks and for List results
}

// Bay is one row of a bunker's bay table.
type Bay struct {
	Index int
	Side  string
	X, Y  float64

	Door, Window, Ladder, FloorCut, Hatch bool
}

// NewEntry describes a made recipe. Facets and File are left for the caller.
func NewEntry(p *recipe.Product) (*Entry, error) {
	data, err := p.Recipe.Marshal()
	if err != nil {
		return nil, fmt.Errorf("NewEntry: %w", err)
	}
	e := &Entry{
		Name:   p.Recipe.Title(),
		Kind:   string(p.Recipe.Piece()),
		Mode:   string(p.Recipe.Mode()),
		Recipe: data,
		Size:   p.Solid.Bounds().Size(),
	}
	if p.Bunker == nil {
		return e, nil
	}
	bays, err := p.Bunker.Bays()
	if err != nil {
		return nil, fmt.Errorf("NewEntry: %w", err)
	}
	e.Bays = make([]Bay, 0, len(bays))
	for _, b := range bays {
		e.Bays = append(e.Bays, Bay{
			Index: b.Index, Side: b.Side.String(), X: b.Center.X, Y: b.Center.Y,
			Door: b.Door, Window: b.Window, Ladder: b.Ladder, FloorCut: b.FloorCut, Hatch: b.Hatch,
		})
	}
	return e, nil
}
