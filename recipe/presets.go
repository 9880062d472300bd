package recipe

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const presetDir = "presets"

// Presets lists the embedded preset names in lexical order.
func Presets() []string {
	entries, err := fs.ReadDir(presetFS, presetDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Preset parses the embedded recipe called name. An unnamed preset takes
// its file name.
func Preset(name string) (*Recipe, error) {
	data, err := presetFS.ReadFile(path.Join(presetDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("Preset: %q: %w", name, ErrUnknownPreset)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Preset: %s: %w", name, err)
	}
	if r.Name == "" {
		r.Name = name
	}
	return r, nil
}
