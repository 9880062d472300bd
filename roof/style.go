package roof

import (
	"fmt"
	"strings"
)

// Style selects the roof body.
type Style int

const (
	// Detailed is the hollow tray with recessed, arched outer walls.
	Detailed Style = iota
	// Flat is the solid slab.
	Flat
)

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case Detailed:
		return "detailed"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle maps "flat" or "detailed" (any case) onto a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "detailed":
		return Detailed, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("ParseStyle: %q: %w", name, ErrUnknownStyle)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
