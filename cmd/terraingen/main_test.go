package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/catalog"
	"github.com/katalvlaran/terrain/internal/monitoring"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-list"}, &out, &out))
	assert.Contains(t, strings.Split(strings.TrimSpace(out.String()), "\n"), "catwalk")
}

func TestFlagErrors(t *testing.T) {
	cases := map[string][]string{
		"neither source": {},
		"both sources":   {"-preset", "catwalk", "-recipe", "x.yaml"},
		"bad resolution": {"-preset", "catwalk", "-res", "0"},
		"bad max cells":  {"-preset", "catwalk", "-max-cells", "-4"},
		"unknown flag":   {"-frobnicate"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(context.Background(), args, &out, &out))
		})
	}
}

func TestRecipeToSTLAndCatalog(t *testing.T) {
	dir := t.TempDir()
	rec := filepath.Join(dir, "block.yaml")
	require.NoError(t, os.WriteFile(rec, []byte(`
name: block
build: body
footprint: {length: 40, width: 40, height: 20, inset: 0, base_height: 2}
stages:
  interior: {enabled: false}
  panels: {enabled: false}
  windows: {enabled: false}
  doors: {enabled: false}
  floor: {enabled: false}
  ladders: {enabled: false}
  roof: {enabled: false}
`), 0o600))

	stlPath := filepath.Join(dir, "block.stl")
	dbPath := filepath.Join(dir, "builds.db")
	pngPath := filepath.Join(dir, "bays.png")
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-recipe", rec, "-o", stlPath, "-res", "2", "-catalog", dbPath, "-preview", pngPath, "-quiet",
	}, &out, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "block: ")

	data, err := os.ReadFile(stlPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("solid block\n")))
	_, err = os.Stat(pngPath)
	assert.NoError(t, err)

	c, err := catalog.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer c.Close()
	list, err := c.List(context.Background(), "block")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, stlPath, list[0].File)
	assert.Positive(t, list[0].Facets)
}

func TestPreviewNeedsBunker(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-preset", "catwalk", "-o", filepath.Join(dir, "c.stl"), "-res", "4",
		"-preview", filepath.Join(dir, "c.png"), "-quiet",
	}, &out, &out)
	assert.ErrorContains(t, err, "not a bunker")
}
