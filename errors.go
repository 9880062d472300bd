// SPDX-License-Identifier: MIT
// Package: terrain
//
// errors.go - sentinel errors shared by every generated object.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Packages wrap these with a method tag via %w, never by string.
//   • Errors returned by caller-supplied factories pass through unwrapped.

package terrain

import "errors"

// ErrNotInitialized indicates Build* was requested before Make completed.
// Usage: if errors.Is(err, ErrNotInitialized) { /* call Make first */ }.
var ErrNotInitialized = errors.New("terrain: object not made")

// ErrInvalidGeometryParameter indicates a geometric parameter that the kernel
// cannot honor, e.g. an edge finish distance not smaller than the feature it
// trims, or a non-positive dimension.
var ErrInvalidGeometryParameter = errors.New("terrain: invalid geometry parameter")

// ErrUnsupportedOperation indicates an edge-finish operation name other than
// "chamfer" or "fillet".
var ErrUnsupportedOperation = errors.New("terrain: unsupported operation")
