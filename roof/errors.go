package roof

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terrain"
)

var (
	// ErrInvalidRoof indicates roof dimensions that cannot produce a solid.
	ErrInvalidRoof = fmt.Errorf("roof: invalid roof: %w", terrain.ErrInvalidGeometryParameter)
	// ErrUnknownStyle indicates a style name other than "flat" or "detailed".
	ErrUnknownStyle = errors.New("roof: unknown style")
)
