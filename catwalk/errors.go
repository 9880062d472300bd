package catwalk

import (
	"fmt"

	"github.com/katalvlaran/terrain"
)

// ErrInvalidCatwalk indicates catwalk dimensions that cannot produce a solid.
var ErrInvalidCatwalk = fmt.Errorf("catwalk: invalid catwalk: %w", terrain.ErrInvalidGeometryParameter)
