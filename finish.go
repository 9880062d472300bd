// SPDX-License-Identifier: MIT
// Package: terrain
//
// finish.go - edge-finish operations (chamfer, fillet) and their validation.
//
// Contract:
//   • ParseOperation accepts "chamfer" and "fillet", case-insensitive, with
//     surrounding whitespace ignored. Anything else is ErrUnsupportedOperation.
//   • ValidateFinish rejects distance < 0 and distance >= limit, where limit is
//     the smallest extent of the feature being trimmed.

package terrain

import (
	"fmt"
	"strings"
)

// Operation names an edge-finish operation.
type Operation int

const (
	// Chamfer trims selected edges with a flat bevel.
	Chamfer Operation = iota
	// Fillet rounds selected edges.
	Fillet
)

const methodParseOperation = "ParseOperation"

// String returns the lower-case operation name.
func (o Operation) String() string {
	switch o {
	case Chamfer:
		return "chamfer"
	case Fillet:
		return "fillet"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// ParseOperation maps a user-facing name onto an Operation.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chamfer":
		return Chamfer, nil
	case "fillet":
		return Fillet, nil
	}
	return 0, fmt.Errorf("%s: %q: %w", methodParseOperation, name, ErrUnsupportedOperation)
}

// MarshalText implements encoding.TextMarshaler (used by YAML recipes).
func (o Operation) MarshalText() ([]byte, error) {
	if o != Chamfer && o != Fillet {
		return nil, fmt.Errorf("MarshalText: %s: %w", o, ErrUnsupportedOperation)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operation) UnmarshalText(b []byte) error {
	op, err := ParseOperation(string(b))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// ValidateFinish checks a finish distance against the smallest extent of the
// feature it trims. Zero distance is valid and means "no finish".
func ValidateFinish(method string, distance, limit float64) error {
	if distance < 0 {
		return fmt.Errorf("%s: finish distance %g < 0: %w", method, distance, ErrInvalidGeometryParameter)
	}
	if distance > 0 && distance >= limit {
		return fmt.Errorf("%s: finish distance %g >= feature extent %g: %w",
			method, distance, limit, ErrInvalidGeometryParameter)
	}
	return nil
}
