package bunker_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/bunker"
	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/internal/monitoring"
	"github.com/katalvlaran/terrain/layout"
	"github.com/katalvlaran/terrain/part"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func v(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

// wideBunker is the 140 × 110 bunker with inset 15: four bays along each
// long side, three along each short side.
func wideBunker(stages ...bunker.Stage) *bunker.Bunker {
	cfg := bunker.DefaultConfig()
	cfg.Footprint.Length, cfg.Footprint.Width = 140, 110
	cfg.Footprint.Inset = 15
	return bunker.New(cfg, bunker.WithStages(stages...))
}

// doorsAndWindows enables doors in bays 0 and 3 and windows everywhere else.
func doorsAndWindows() []bunker.Stage {
	w := bunker.NewWindows()
	w.Skip = nil
	return []bunker.Stage{&bunker.Interior{}, &bunker.Base{}, &bunker.Panels{Details: true}, w, bunker.NewDoors()}
}

func body(t *testing.T, b *bunker.Bunker) csg.Solid {
	t.Helper()
	require.NoError(t, b.Make())
	s, err := b.BuildBody()
	require.NoError(t, err)
	return s
}

func TestDoorsAndWindowsPartitionBays(t *testing.T) {
	b := wideBunker(doorsAndWindows()...)
	require.NoError(t, b.Make())
	bays, err := b.Bays()
	require.NoError(t, err)
	require.Len(t, bays, 14)

	var doors, windows []int
	for _, bay := range bays {
		assert.False(t, bay.Door && bay.Window, "bay %d has both", bay.Index)
		if bay.Door {
			doors = append(doors, bay.Index)
		}
		if bay.Window {
			windows = append(windows, bay.Index)
		}
	}
	assert.Empty(t, cmp.Diff([]int{0, 3}, doors))
	assert.Empty(t, cmp.Diff([]int{1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, windows))
}

func TestBayTable(t *testing.T) {
	b := wideBunker(doorsAndWindows()...)
	require.NoError(t, b.Make())
	bays, err := b.Bays()
	require.NoError(t, err)

	sides := map[layout.Side]int{}
	for _, bay := range bays {
		sides[bay.Side]++
	}
	assert.Equal(t, map[layout.Side]int{layout.North: 4, layout.East: 3, layout.South: 4, layout.West: 3}, sides)

	assert.InDelta(t, -54, bays[0].Center.X, 1e-9, "north row runs west to east")
	assert.InDelta(t, 55, bays[0].Center.Y, 1e-9)
	assert.InDelta(t, 70, bays[4].Center.X, 1e-9, "east row follows from the south end")
	assert.InDelta(t, -36, bays[4].Center.Y, 1e-9)
}

func TestDoorOpening(t *testing.T) {
	s := body(t, wideBunker(doorsAndWindows()...))

	// Bay 0 is the north bay centered at x = -54; the interior face is y = 35.
	assert.False(t, csg.Inside(s, v(-54, 36, -15)), "door opening in front of the wheel")
	assert.True(t, csg.Inside(s, v(-54, 40, -15)), "blast door slab")
	assert.True(t, csg.Inside(s, v(-18, 36.5, -15)), "wall below the window of bay 1")
	assert.False(t, csg.Inside(s, v(-18, 36.5, -4)), "window of bay 1")
	assert.True(t, csg.Inside(s, v(-24.5, 36.5, -4)), "window frame of bay 1")
	assert.True(t, csg.Inside(s, v(-54, 36.5, 4.5)), "no window above the door")
}

func TestBodyLayers(t *testing.T) {
	s := body(t, wideBunker(&bunker.Interior{}, &bunker.Base{}, bunker.NewFloor()))

	assert.False(t, csg.Inside(s, v(0, 0, 0)), "hollow")
	assert.True(t, csg.Inside(s, v(0, 0, -35)), "floor")
	assert.True(t, csg.Inside(s, v(60, 0, -39)), "base")
	assert.False(t, csg.Inside(s, v(0, 0, -41)), "below the base")
	assert.True(t, csg.Inside(s, v(6, 0, -32.2)), "floor tile")
}

func TestInteriorOnlyWhenEnabled(t *testing.T) {
	s := body(t, wideBunker(&bunker.Base{}))
	assert.True(t, csg.Inside(s, v(0, 0, 0)), "solid without an Interior stage")
}

func TestFloorCuts(t *testing.T) {
	stages := []bunker.Stage{&bunker.Interior{}, &bunker.Base{}, bunker.NewFloor()}
	solid := body(t, wideBunker(stages...))
	cut := body(t, wideBunker(append(stages, bunker.NewFloorCuts())...))

	p := v(-45, 20, -36)
	assert.True(t, csg.Inside(solid, p))
	assert.False(t, csg.Inside(cut, p), "floor opened along bay 0")
	assert.False(t, csg.Inside(cut, v(-45, 20, -39)), "through the base")
}

func TestPips(t *testing.T) {
	pegs := bunker.NewPips()
	s := body(t, bunker.New(bunker.DefaultConfig(), bunker.WithStages(&bunker.Interior{}, &bunker.Base{}, pegs)))

	x := 50 - 10 - 1.55 - 1.5
	assert.True(t, csg.Inside(s, v(x, x, 38.5)), "peg on top")
	assert.False(t, csg.Inside(s, v(46.95, 46.95, -40)), "hole under the base")

	magnets := bunker.NewPips()
	magnets.Magnets = true
	s = body(t, bunker.New(bunker.DefaultConfig(), bunker.WithStages(&bunker.Interior{}, &bunker.Base{}, magnets)))
	assert.False(t, csg.Inside(s, v(x, x, 38.5)), "no peg")
	assert.False(t, csg.Inside(s, v(x, x, 37)), "magnet hole in the top")
}

func TestBuildBeforeMake(t *testing.T) {
	b := bunker.Default()
	for name, build := range map[string]func() (csg.Solid, error){
		"Build": b.Build, "BuildBody": b.BuildBody, "BuildRoof": b.BuildRoof, "BuildPlate": b.BuildPlate,
	} {
		_, err := build()
		assert.ErrorIs(t, err, terrain.ErrNotInitialized, name)
	}
	_, err := b.Bays()
	assert.ErrorIs(t, err, terrain.ErrNotInitialized)
}

func TestDefaultBuildIsIdempotent(t *testing.T) {
	b := bunker.Default()
	require.NoError(t, b.Make())
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	for _, p := range []r3.Vec{v(0, 0, 40), v(0, 0, 0), v(45, 0, -20), v(-50, 30, -38)} {
		assert.Equal(t, first.Distance(p), second.Distance(p), "%v", p)
	}
	assert.True(t, csg.Inside(first, v(0, 0, 40)), "roof floor stacked on top")

	body, err := b.BuildBody()
	require.NoError(t, err)
	assert.False(t, csg.Inside(body, v(0, 0, 40)))
}

func TestRoofHatchFollowsLadder(t *testing.T) {
	b := bunker.Default()
	require.NoError(t, b.Make())
	bays, err := b.Bays()
	require.NoError(t, err)
	assert.True(t, bays[0].Ladder)
	assert.True(t, bays[0].Hatch)
	assert.False(t, bays[1].Hatch)
	assert.True(t, bays[3].Door)
	assert.False(t, bays[0].Window, "ladder bay reserved from windows")
}

func TestPlateOffset(t *testing.T) {
	b := bunker.Default()
	require.NoError(t, b.Make())
	assert.Equal(t, v(100, 0, -78), b.PlateOffset())
	assert.Equal(t, v(0, 0, 37.5+9), b.RoofOffset())

	plate, err := b.BuildPlate()
	require.NoError(t, err)
	assert.True(t, csg.Inside(plate, v(100, 0, -38)), "roof floor on the print plane")

	b.Config.Footprint.Inset = -3
	require.NoError(t, b.Make())
	// roof 108 long with a -3 inset: its top reaches 57 from center
	assert.InDelta(t, 50+57+bunker.DefaultPlateGap, b.PlateOffset().X, 1e-9)

	b = bunker.New(b.Config, bunker.WithStages(bunker.NewRoof()), bunker.WithPlateGap(5))
	require.NoError(t, b.Make())
	assert.InDelta(t, 50+57+5.0, b.PlateOffset().X, 1e-9)
}

func TestRoofOverrides(t *testing.T) {
	r := bunker.NewRoof()
	x, z := 200.0, 10.0
	r.XTranslate, r.ZTranslate = &x, &z
	b := bunker.New(bunker.DefaultConfig(), bunker.WithStages(r))
	require.NoError(t, b.Make())
	assert.Equal(t, v(200, 0, 10), b.RoofOffset())
}

func TestBuildRoofWithoutStage(t *testing.T) {
	b := bunker.New(bunker.DefaultConfig())
	require.NoError(t, b.Make())
	_, err := b.BuildRoof()
	assert.ErrorIs(t, err, bunker.ErrInvalidStage)

	s, err := b.Build()
	require.NoError(t, err)
	assert.True(t, csg.Inside(s, v(0, 0, 0)), "bare wedge")
}

func TestInvalidFootprint(t *testing.T) {
	cases := map[string]func(c *bunker.Config){
		"zero length":      func(c *bunker.Config) { c.Footprint.Length = 0 },
		"low height":       func(c *bunker.Config) { c.Footprint.Height = 4 },
		"no interior":      func(c *bunker.Config) { c.Footprint.Inset = 45 },
		"huge chamfer":     func(c *bunker.Config) { c.Footprint.CornerChamfer = 50 },
		"negative base":    func(c *bunker.Config) { c.Footprint.BaseHeight = -1 },
		"floor to ceiling": func(c *bunker.Config) { c.Footprint.FloorThickness = 75 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			b := bunker.Default()
			mutate(&b.Config)
			err := b.Make()
			assert.ErrorIs(t, err, bunker.ErrInvalidFootprint)
			assert.ErrorIs(t, err, terrain.ErrInvalidGeometryParameter)
			assert.False(t, b.Made())
		})
	}
}

func TestInvalidStage(t *testing.T) {
	b := bunker.Default()
	b.Stage(bunker.KindWindows).(*bunker.Windows).Height = 80
	err := b.Make()
	assert.ErrorIs(t, err, bunker.ErrInvalidStage)
	assert.Contains(t, err.Error(), "Make: windows:")
}

func TestFactoryErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	w := bunker.NewWindows()
	w.Fill = bunker.FactoryFunc(func(bunker.Config) (csg.Solid, error) { return nil, boom })

	err := bunker.New(bunker.DefaultConfig(), bunker.WithStages(w)).Make()
	assert.Same(t, boom, err)
}

func TestFactoryOverridesDoor(t *testing.T) {
	d := bunker.NewDoors()
	var seen bunker.Config
	d.Fill = bunker.FactoryFunc(func(cfg bunker.Config) (csg.Solid, error) {
		seen = cfg
		// overrides sit at z = 0; this one stands itself on the floor
		z := -(cfg.Footprint.Height/2 - 5) + cfg.Floor()
		return csg.Translate(csg.Box(10, 5, 10), 0, 0, z), nil
	})
	b := wideBunker(&bunker.Interior{}, d)
	s := body(t, b)
	assert.Equal(t, 140.0, seen.Footprint.Length)
	assert.True(t, csg.Inside(s, v(-54, 40, -27.5)))
	assert.False(t, csg.Inside(s, v(-54+8, 40, -27.5)), "narrow door leaves the opening clear")
	assert.False(t, csg.Inside(s, v(-54, 40, -15)), "not dropped to the door sill")
}

func TestFactoryCutStaysAtFactoryHeight(t *testing.T) {
	d := bunker.NewDoors()
	d.Cut = bunker.FactoryFunc(func(bunker.Config) (csg.Solid, error) {
		return csg.Box(23, 20, 10), nil
	})
	s := body(t, wideBunker(&bunker.Interior{}, d))
	assert.False(t, csg.Inside(s, v(-54, 36, 0)), "cut where the factory put it")
	assert.True(t, csg.Inside(s, v(-54, 36, -25)), "wall left at the sill")
}

// splitDoorBunker is a small flush-walled bunker whose bay 0 gets a pointed
// arch opening and an open split door, both standing on the floor.
func splitDoorBunker() *bunker.Bunker {
	const doorH, doorBase = 40, 20
	sill := func(cfg bunker.Config) float64 { return -cfg.Footprint.Height/2 + cfg.Floor() + doorH/2 }

	d := bunker.NewDoors()
	d.Panels = []int{0}
	d.Cut = bunker.FactoryFunc(func(cfg bunker.Config) (csg.Solid, error) {
		f := cfg.Footprint
		return csg.Translate(part.PointedArch(22, f.Inset+f.WallWidth, doorH, doorBase), 0, 0, sill(cfg)), nil
	})
	d.Fill = bunker.FactoryFunc(func(cfg bunker.Config) (csg.Solid, error) {
		sd := part.NewSplitDoor()
		sd.Length, sd.Width, sd.Height, sd.BaseHeight, sd.Open = 22, 1, doorH, doorBase, 6
		door, err := part.MakeBuild(sd)
		if err != nil {
			return nil, err
		}
		return csg.Translate(door, 0, 0, sill(cfg)), nil
	})

	cfg := bunker.DefaultConfig()
	cfg.Footprint.Length, cfg.Footprint.Width, cfg.Footprint.Height = 75, 75, 65
	cfg.Footprint.Inset, cfg.Footprint.WallWidth = 0, 6
	cfg.Panel.Width = 5
	return bunker.New(cfg, bunker.WithStages(&bunker.Interior{}, d))
}

func TestSplitDoorAsCustomDoor(t *testing.T) {
	b := splitDoorBunker()
	s := body(t, b)
	bays, err := b.Bays()
	require.NoError(t, err)
	require.True(t, bays[0].Door)
	x := bays[0].Center.X

	// interior face y = 31.5; the door stands 1.25 proud of it, the sill is z = 26.5 below center
	const doorY, mid = 32.75, -16.5
	assert.False(t, csg.Inside(s, v(x, doorY, mid)), "gap between the open leaves")
	assert.True(t, csg.Inside(s, v(x+9, doorY, mid)), "leaf slid into the wall")
	assert.True(t, csg.Inside(s, v(x, doorY, -26)), "sill bar")
	assert.False(t, csg.Inside(s, v(x, 36.5, mid)), "arch opening through the wall")
	assert.True(t, csg.Inside(s, v(x, 36.5, 20)), "wall above the arch")
}

func TestThinWallDoorFillet(t *testing.T) {
	// a 3 deep door cut still takes the 4 radius fillet on its 23 × 35 faces
	d := bunker.NewDoors()
	d.Width = 1
	b := wideBunker(&bunker.Interior{}, d)
	b.Config.Footprint.Inset, b.Config.Footprint.WallWidth = 0, 3
	s := body(t, b)

	// interior face y = 52, door z = -17
	assert.False(t, csg.Inside(s, v(-54+8, 54.5, -12.6)), "opening behind the door")
	assert.True(t, csg.Inside(s, v(-54-11.3, 54.5, -34.3)), "filleted corner left standing")
}

func TestInsetBranches(t *testing.T) {
	cases := []struct {
		inset    float64
		interior bunker.Dims
		// points through the north wall: window of bay 1, door opening and slab of bay 0
		windowY, doorY, slabY float64
	}{
		{inset: -3, interior: bunker.Dims{Length: 130, Width: 100}, windowY: 55.5, doorY: 55.5, slabY: 51.25},
		{inset: 0, interior: bunker.Dims{Length: 130, Width: 100}, windowY: 52.5, doorY: 54.5, slabY: 51.25},
		{inset: 15, interior: bunker.Dims{Length: 100, Width: 70}, windowY: 41, doorY: 46, slabY: 40},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("inset %g", tc.inset), func(t *testing.T) {
			walled := wideBunker(&bunker.Interior{})
			walled.Config.Footprint.Inset = tc.inset
			assert.Equal(t, tc.interior, walled.Config.Interior())
			wall := body(t, walled)

			w := bunker.NewWindows()
			w.Skip = nil
			b := wideBunker(&bunker.Interior{}, w, bunker.NewDoors())
			b.Config.Footprint.Inset = tc.inset
			s := body(t, b)
			bays, err := b.Bays()
			require.NoError(t, err)
			win := v(bays[1].Center.X, tc.windowY, -4)
			door := v(bays[0].Center.X+8, tc.doorY, -10.6)

			assert.True(t, csg.Inside(wall, win), "wall behind window %v", win)
			assert.False(t, csg.Inside(s, win), "window open at %v", win)
			assert.True(t, csg.Inside(wall, door), "wall behind door %v", door)
			assert.False(t, csg.Inside(s, door), "door opening clear at %v", door)
			assert.True(t, csg.Inside(s, v(bays[0].Center.X+8, tc.slabY, -10.6)), "door slab")
		})
	}
}

func TestLadderCustomize(t *testing.T) {
	l := bunker.NewLadders()
	var height float64
	l.Customize = func(ld *part.Ladder) {
		ld.RungSpacing = 10
		height = ld.Height
	}
	b := bunker.New(bunker.DefaultConfig(), bunker.WithStages(&bunker.Interior{}, l))
	require.NoError(t, b.Make())
	assert.Equal(t, 75.0, height)
}

func TestCornerChamfer(t *testing.T) {
	b := bunker.New(bunker.DefaultConfig(), bunker.WithStages(&bunker.Base{}))
	b.Config.Footprint.CornerChamfer = 6
	s := body(t, b)
	assert.False(t, csg.Inside(s, v(49, 49, -39)), "base corner cut")
	assert.True(t, csg.Inside(s, v(40, 40, -39)))
	assert.False(t, csg.Inside(s, v(49, 49, -37)), "body corner cut")
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { bunker.WithStages(nil) })
	assert.Panics(t, func() { bunker.WithPlateGap(-1) })
	assert.Panics(t, func() { bunker.WithoutStages(bunker.StageKind(99)) })
}

func TestWithoutStages(t *testing.T) {
	b := bunker.New(bunker.DefaultConfig(),
		bunker.WithStages(bunker.DefaultStages()...), bunker.WithoutStages(bunker.KindRoof))
	assert.Nil(t, b.Stage(bunker.KindRoof))
	assert.NotNil(t, b.Stage(bunker.KindLadders))
	assert.Equal(t, "floor cuts", bunker.KindFloorCuts.String())
}
