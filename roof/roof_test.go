package roof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/roof"
)

func v(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

func build(t *testing.T, r *roof.Roof) csg.Solid {
	t.Helper()
	require.NoError(t, r.Make())
	s, err := r.Build()
	require.NoError(t, err)
	return s
}

// bunkerRoof mirrors the roof a 140 × 110 bunker with inset 15 carries.
func bunkerRoof() *roof.Roof {
	r := roof.New(roof.Detailed)
	r.Length, r.Width, r.Height = 112, 82, 18
	r.Inset, r.WallWidth = -3, 5
	r.Walls.DetailsInset = -0.8
	return r
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]roof.Style{"flat": roof.Flat, " Detailed ": roof.Detailed, "FLAT": roof.Flat} {
		got, err := roof.ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := roof.ParseStyle("gabled")
	assert.ErrorIs(t, err, roof.ErrUnknownStyle)

	var s roof.Style
	require.NoError(t, s.UnmarshalText([]byte("flat")))
	assert.Equal(t, roof.Flat, s)
	b, err := roof.Detailed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "detailed", string(b))
}

func TestBuildBeforeMake(t *testing.T) {
	_, err := roof.New(roof.Flat).Build()
	assert.ErrorIs(t, err, terrain.ErrNotInitialized)
}

func TestInvalidRoof(t *testing.T) {
	cases := map[string]func(r *roof.Roof){
		"zero length":    func(r *roof.Roof) { r.Length = 0 },
		"inset too big":  func(r *roof.Roof) { r.Inset = 80 },
		"negative wall":  func(r *roof.Roof) { r.WallWidth = -1 },
		"chamfer height": func(r *roof.Roof) { r.Chamfer = r.Height },
		"hole diameter":  func(r *roof.Roof) { r.Holes.Enabled, r.Holes.Diameter = true, 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := roof.New(roof.Flat)
			mutate(r)
			err := r.Make()
			assert.ErrorIs(t, err, terrain.ErrInvalidGeometryParameter)
			assert.False(t, r.Made())
		})
	}
}

func TestFlatBody(t *testing.T) {
	r := roof.New(roof.Flat)
	r.Inset = 5
	s := build(t, r)
	assert.True(t, csg.Inside(s, v(0, 0, 0)))
	assert.True(t, csg.Inside(s, v(74.5, 69.5, 12)))
	assert.False(t, csg.Inside(s, v(76, 0, 0)), "inset trims the slab")

	hl, hw := r.Extent()
	assert.Equal(t, 75.0, hl)
	assert.Equal(t, 70.0, hw)
}

func TestFlatChamfer(t *testing.T) {
	r := roof.New(roof.Flat)
	r.Chamfer = 3
	s := build(t, r)
	assert.False(t, csg.Inside(s, v(79.5, 0, 12.4)))
	assert.True(t, csg.Inside(s, v(79.5, 0, 0)))
	assert.True(t, csg.Inside(s, v(79.5, 0, -12.4)), "only the top edges are finished")
}

func TestFlatTiles(t *testing.T) {
	r := roof.New(roof.Flat)
	r.Tiles.Enabled = true
	s := build(t, r)
	assert.True(t, csg.Inside(s, v(19.5, 19.5, 13.25)), "tile on top")
	assert.False(t, csg.Inside(s, v(23, 19.5, 13.25)), "gap between tiles")

	r.Tiles.ZOffset = -2
	s = build(t, r)
	assert.False(t, csg.Inside(s, v(19.5, 19.5, 11.75)), "tile sunk into the top")
	assert.True(t, csg.Inside(s, v(23, 19.5, 11.75)))
	assert.False(t, csg.Inside(s, v(19.5, 19.5, 13.25)))
}

func TestFlatHatches(t *testing.T) {
	r := roof.New(roof.Flat)
	r.Bays = roof.Bays{PanelLength: 28, PanelPadding: 4}
	r.Hatches.Panels = []int{0}
	s := build(t, r)
	assert.Equal(t, []int{0}, r.HatchBays())
	assert.True(t, csg.Inside(s, v(-82, 52.5, 15.5)), "hatch base over bay 0")
	assert.False(t, csg.Inside(s, v(-46, 52.5, 15.5)), "bay 1 has no hatch")
}

func TestFlatHoles(t *testing.T) {
	r := roof.New(roof.Flat)
	r.Holes.Enabled = true
	s := build(t, r)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			assert.False(t, csg.Inside(s, v(sx*77.5, sy*72.5, -12)))
			assert.True(t, csg.Inside(s, v(sx*77.5, sy*72.5, 0)))
		}
	}
}

func TestDetailedTray(t *testing.T) {
	s := build(t, bunkerRoof())
	assert.True(t, csg.Inside(s, v(0, 0, -7)), "floor")
	assert.False(t, csg.Inside(s, v(0, 0, 0)), "hollow")
	assert.False(t, csg.Inside(s, v(0, 0, 8.9)), "open top")
	assert.False(t, csg.Inside(s, v(54.8, 0, 0)), "arch window in the east wall")
	assert.True(t, csg.Inside(s, v(54.8, 10, 0)), "post between east wall details")
	assert.True(t, csg.Inside(s, v(54.8, 0, 8.5)), "panel above the arch")
}

func TestDetailedExtent(t *testing.T) {
	r := bunkerRoof()
	hl, hw := r.Extent()
	assert.Equal(t, 59.0, hl, "overhang widens the top")
	assert.Equal(t, 44.0, hw)
	assert.Equal(t, 108.0, r.InteriorLength())
}

func TestDetailedHatchesAlignWithBays(t *testing.T) {
	r := bunkerRoof()
	r.Bays = roof.Bays{
		PanelLength: 28, PanelPadding: 4,
		SpanLength: 140, SpanWidth: 110,
		InteriorLength: 100, InteriorWidth: 70,
	}
	r.Tiles.Enabled = true
	r.Hatches.Panels = []int{0, 5}
	r.Hatches.Radius = 11
	s := build(t, r)

	assert.Equal(t, []int{0, 5}, r.HatchBays())
	assert.False(t, csg.Inside(s, v(-54, 23.5, -8.5)), "floor opened under the hatch")
	assert.True(t, csg.Inside(s, v(-18, 23.5, -8.5)), "floor intact under bay 1")
}

func TestDetailedHolesRecut(t *testing.T) {
	r := bunkerRoof()
	r.Holes = roof.Holes{Enabled: true, Inset: 1.5, Depth: 2, Diameter: 3}
	s := build(t, r)
	// x = 56 - 1.5 - 1.5
	assert.False(t, csg.Inside(s, v(53, 38, -8.5)))
	assert.True(t, csg.Inside(s, v(53, 38, -5)))
}

func TestBuildIdempotent(t *testing.T) {
	r := bunkerRoof()
	r.Tiles.Enabled = true
	a := build(t, r)
	b, err := r.Build()
	require.NoError(t, err)
	for _, p := range []r3.Vec{v(0, 0, -7), v(54.8, 10, 0), v(10, 10, -3)} {
		assert.Equal(t, a.Distance(p), b.Distance(p))
	}
}
