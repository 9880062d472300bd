package part

import (
	"fmt"

	"github.com/katalvlaran/terrain"
)

// ErrInvalidDimension indicates a non-positive or inconsistent dimension.
// It wraps terrain.ErrInvalidGeometryParameter.
var ErrInvalidDimension = fmt.Errorf("part: invalid dimension: %w", terrain.ErrInvalidGeometryParameter)

// validatePositive fails with ErrInvalidDimension when any value is <= 0.
func validatePositive(method string, named ...any) error {
	for i := 0; i+1 < len(named); i += 2 {
		name, _ := named[i].(string)
		v, _ := named[i+1].(float64)
		if v <= 0 {
			return fmt.Errorf("%s: %s=%g must be > 0: %w", method, name, v, ErrInvalidDimension)
		}
	}
	return nil
}
