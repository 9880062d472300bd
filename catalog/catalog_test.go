package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/catalog"
	"github.com/katalvlaran/terrain/internal/monitoring"
	"github.com/katalvlaran/terrain/recipe"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func open(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := catalog.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, path
}

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func entry(name string, at time.Duration) *catalog.Entry {
	return &catalog.Entry{
		Name:      name,
		Kind:      "bunker",
		Mode:      "build",
		Recipe:    []byte("name: " + name + "\n"),
		Size:      r3.Vec{X: 140, Y: 110, Z: 96.5},
		Facets:    1200,
		File:      name + ".stl",
		CreatedAt: epoch.Add(at),
	}
}

func TestOpenMigratesToLatest(t *testing.T) {
	c, path := open(t)
	v, dirty, err := c.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)
	assert.False(t, dirty)

	// reopening an up-to-date catalog is not an error
	again, err := catalog.Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestAddGet(t *testing.T) {
	ctx := context.Background()
	c, _ := open(t)

	e := entry("outpost", 0)
	e.Bays = []catalog.Bay{
		{Index: 0, Side: "north", X: -54, Y: 55, Door: true},
		{Index: 1, Side: "north", X: -18, Y: 55, Window: true},
		{Index: 4, Side: "east", X: 70, Y: 36, Ladder: true, Hatch: true, FloorCut: true},
	}
	require.NoError(t, c.Add(ctx, e))
	assert.NotEqual(t, uuid.Nil, e.ID)

	got, err := c.Get(ctx, e.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestAddFillsCreatedAt(t *testing.T) {
	c, _ := open(t)
	e := entry("x", 0)
	e.CreatedAt = time.Time{}
	before := time.Now()
	require.NoError(t, c.Add(context.Background(), e))
	assert.WithinDuration(t, before, e.CreatedAt, time.Minute)
}

func TestAddDuplicateID(t *testing.T) {
	ctx := context.Background()
	c, _ := open(t)
	e := entry("a", 0)
	require.NoError(t, c.Add(ctx, e))
	dup := entry("b", time.Second)
	dup.ID = e.ID
	assert.Error(t, c.Add(ctx, dup))

	list, err := c.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1, "failed add leaves nothing behind")
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	c, _ := open(t)
	for i, name := range []string{"outpost", "catwalk", "outpost"} {
		require.NoError(t, c.Add(ctx, entry(name, time.Duration(i)*time.Hour)))
	}

	all, err := c.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, epoch.Add(2*time.Hour), all[0].CreatedAt)
	assert.Equal(t, epoch, all[2].CreatedAt)

	outposts, err := c.List(ctx, "outpost")
	require.NoError(t, err)
	assert.Len(t, outposts, 2)
	for _, e := range outposts {
		assert.Equal(t, "outpost", e.Name)
		assert.Nil(t, e.Bays)
	}

	none, err := c.List(ctx, "castle")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	c, _ := open(t)

	_, err := c.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	e := entry("gone", 0)
	e.Bays = []catalog.Bay{{Index: 0, Side: "north"}}
	require.NoError(t, c.Add(ctx, e))
	require.NoError(t, c.Delete(ctx, e.ID))
	_, err = c.Get(ctx, e.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.ErrorIs(t, c.Delete(ctx, e.ID), catalog.ErrNotFound)
}

func TestNewEntryFromRecipe(t *testing.T) {
	r, err := recipe.Preset("outpost")
	require.NoError(t, err)
	p, err := r.Make()
	require.NoError(t, err)

	e, err := catalog.NewEntry(p)
	require.NoError(t, err)
	assert.Equal(t, "outpost", e.Name)
	assert.Equal(t, "bunker", e.Kind)
	assert.Equal(t, "build", e.Mode)
	assert.Contains(t, string(e.Recipe), "name: outpost")
	assert.Len(t, e.Bays, 14)
	assert.Equal(t, "north", e.Bays[0].Side)
	assert.GreaterOrEqual(t, e.Size.X, 110.0)

	ctx := context.Background()
	c, _ := open(t)
	require.NoError(t, c.Add(ctx, e))
	got, err := c.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, got.Bays, 14)
}

func TestNewEntryCatwalk(t *testing.T) {
	r, err := recipe.Preset("catwalk")
	require.NoError(t, err)
	p, err := r.Make()
	require.NoError(t, err)
	e, err := catalog.NewEntry(p)
	require.NoError(t, err)
	assert.Equal(t, "catwalk", e.Kind)
	assert.Nil(t, e.Bays)
}
