package catwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/catwalk"
	"github.com/katalvlaran/terrain/csg"
)

func v(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

func build(t *testing.T, c *catwalk.Catwalk) csg.Solid {
	t.Helper()
	require.NoError(t, c.Make())
	s, err := c.Build()
	require.NoError(t, err)
	return s
}

func TestBuildBeforeMake(t *testing.T) {
	_, err := catwalk.New().Build()
	assert.ErrorIs(t, err, terrain.ErrNotInitialized)
}

func TestPlatformAndLedge(t *testing.T) {
	s := build(t, catwalk.New())

	assert.False(t, csg.Inside(s, v(0, 0, 0)), "opening")
	assert.True(t, csg.Inside(s, v(80, 0, 0)), "ring")
	assert.True(t, csg.Inside(s, v(62, 0, -1)), "ledge under the roof edge")
	assert.False(t, csg.Inside(s, v(62, 0, 1)), "opening above the ledge")
	assert.False(t, csg.Inside(s, v(55, 0, -1)), "ledge stops at the overlap")
	assert.False(t, csg.Inside(s, v(93.3, 0, -1.9)), "bottom rim chamfered")
}

func TestMagnetHoles(t *testing.T) {
	c := catwalk.New()
	assert.False(t, csg.Inside(build(t, c), v(62, 62, -1)))

	c.Magnets.Enabled = false
	assert.True(t, csg.Inside(build(t, c), v(62, 62, -1)))
}

func TestCornerWalls(t *testing.T) {
	s := build(t, catwalk.New())

	// The south-east corner joint is at (92, -92); its west arm runs along
	// the south edge from x = 38.5 to 93.5.
	assert.True(t, csg.Inside(s, v(90, -92, 26)), "wall above the arches")
	assert.False(t, csg.Inside(s, v(86.1, -92, 14.5)), "arch through the wall")
	assert.True(t, csg.Inside(s, v(92, -60, 26)), "north arm of the same corner")
	assert.False(t, csg.Inside(s, v(40, -92, 26)), "pointed end drops away")
	assert.True(t, csg.Inside(s, v(-92, 90, 26)), "north-west corner")
	assert.False(t, csg.Inside(s, v(0, -92, 10)), "no wall mid-side")
}

func TestWalkwayEngraving(t *testing.T) {
	c := catwalk.New()
	s := build(t, c)
	assert.False(t, csg.Inside(s, v(73.5, 3.5, 1.5)), "diamond sunk into the top")
	assert.True(t, csg.Inside(s, v(77, 7, 1.5)), "gap between diamonds")
	assert.True(t, csg.Inside(s, v(73.5, 3.5, 0.5)), "below the engraving")

	c.Floor.Enabled = false
	assert.True(t, csg.Inside(build(t, c), v(73.5, 3.5, 1.5)))
}

func TestInvalidCatwalk(t *testing.T) {
	cases := map[string]func(c *catwalk.Catwalk){
		"zero height":     func(c *catwalk.Catwalk) { c.Height = 0 },
		"opening too big": func(c *catwalk.Catwalk) { c.Interior.Length = 190 },
		"thick ledge":     func(c *catwalk.Catwalk) { c.Interior.Height = 5 },
		"overlap":         func(c *catwalk.Catwalk) { c.Interior.Overlap = 65 },
		"short wall":      func(c *catwalk.Catwalk) { c.Walls.Length = 10 },
		"deep floor":      func(c *catwalk.Catwalk) { c.Floor.Height = 4 },
		"bottom chamfer":  func(c *catwalk.Catwalk) { c.BottomChamfer = 4 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := catwalk.New()
			mutate(c)
			err := c.Make()
			assert.ErrorIs(t, err, catwalk.ErrInvalidCatwalk)
			assert.ErrorIs(t, err, terrain.ErrInvalidGeometryParameter)
			assert.False(t, c.Made())
		})
	}
}
