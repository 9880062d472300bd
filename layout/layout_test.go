package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/csg"
	"github.com/katalvlaran/terrain/layout"
)

func panelUnit() layout.Unit {
	return layout.Unit{Solid: csg.Box(28, 6, 10), Length: 28, Padding: 4}
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 90.0, layout.Angle(0, 75))
	assert.Equal(t, 90.0, layout.Angle(0, 0))
	assert.InDelta(t, 45, layout.Angle(10, 10), 1e-12)
	assert.Greater(t, layout.Angle(-5, 50), 90.0)

	prev := layout.Angle(-20, 50)
	for inset := -15.0; inset <= 40; inset += 5 {
		a := layout.Angle(inset, 50)
		assert.Less(t, a, prev, "angle must fall as inset grows (inset=%g)", inset)
		prev = a
	}
}

func TestRow(t *testing.T) {
	r := layout.Row{Unit: panelUnit(), Span: 120}
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, []float64{-32, 0, 32}, r.Positions())

	r.Spacing = 36
	assert.Equal(t, []float64{-36, 0, 36}, r.Positions())

	ms, err := r.Place()
	require.NoError(t, err)
	require.Len(t, ms, 3)
	assert.Equal(t, -36.0, ms[0].Center.X)
	assert.True(t, csg.Inside(ms[2].Solid, ms[2].Center))

	assert.Equal(t, 0, layout.Row{Unit: panelUnit(), Span: 20}.Count())
}

func TestRowOverride(t *testing.T) {
	var slots []int
	r := layout.Row{Unit: panelUnit(), Span: 96, Override: func(slot int, s csg.Solid) csg.Solid {
		slots = append(slots, slot)
		if slot == 1 {
			return csg.Box(1, 1, 1)
		}
		return s
	}}
	ms, err := r.Place()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, slots)
	assert.Equal(t, 1.0, ms[1].Solid.Bounds().Size().X)
}

func TestRowErrors(t *testing.T) {
	tests := []struct {
		name string
		row  layout.Row
	}{
		{"nil unit", layout.Row{Span: 10}},
		{"zero span", layout.Row{Unit: panelUnit()}},
		{"zero pitch", layout.Row{Unit: layout.Unit{Solid: csg.Box(1, 1, 1)}, Span: 10}},
		{"negative spacing", layout.Row{Unit: panelUnit(), Span: 10, Spacing: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.row.Place()
			assert.ErrorIs(t, err, layout.ErrInvalidSeries)
		})
	}
}

func TestPerimeterOrder(t *testing.T) {
	p := layout.Perimeter{
		Unit: panelUnit(), Length: 140, Width: 110,
		XTranslate: 70, YTranslate: 55, ZTranslate: 2,
	}
	assert.Equal(t, [4]int{4, 3, 4, 3}, p.Counts())

	pl, err := p.Place()
	require.NoError(t, err)
	require.Equal(t, 14, pl.Len())

	var sides []layout.Side
	for i, m := range pl.Members() {
		assert.Equal(t, i, m.Index)
		assert.InDelta(t, 2, m.Center.Z, 1e-12)
		sides = append(sides, m.Side)
	}
	N, E, S, W := layout.North, layout.East, layout.South, layout.West
	want := []layout.Side{N, N, N, N, E, E, E, S, S, S, S, W, W, W}
	if diff := cmp.Diff(want, sides); diff != "" {
		t.Fatalf("side order (-want +got):\n%s", diff)
	}

	ms := pl.Members()
	// North runs west to east along y=+55.
	assert.InDelta(t, -48, ms[0].Center.X, 1e-9)
	assert.InDelta(t, 55, ms[0].Center.Y, 1e-9)
	assert.Less(t, ms[0].Center.X, ms[3].Center.X)
	// East runs south to north along x=+70.
	assert.InDelta(t, 70, ms[4].Center.X, 1e-9)
	assert.InDelta(t, -32, ms[4].Center.Y, 1e-9)
	assert.InDelta(t, 32, ms[6].Center.Y, 1e-9)
	// South runs east to west.
	assert.InDelta(t, -55, ms[7].Center.Y, 1e-9)
	assert.Greater(t, ms[7].Center.X, ms[10].Center.X)
	// West runs north to south.
	assert.InDelta(t, -70, ms[11].Center.X, 1e-9)
	assert.InDelta(t, 32, ms[11].Center.Y, 1e-9)
	assert.InDelta(t, -32, ms[13].Center.Y, 1e-9)

	// Each solid sits on its member's center.
	for _, m := range ms {
		c := m.Solid.Bounds().Center()
		assert.InDelta(t, m.Center.X, c.X, 1e-9, "member %d", m.Index)
		assert.InDelta(t, m.Center.Y, c.Y, 1e-9, "member %d", m.Index)
	}
}

func TestPerimeterFacesOutward(t *testing.T) {
	// The template sits on its own +Y side; every copy must land outside its row line.
	unit := layout.Unit{Solid: csg.Translate(csg.Box(10, 2, 2), 0, 1, 0), Length: 10, Padding: 2}
	pl, err := layout.Perimeter{Unit: unit, Length: 12, Width: 12, XTranslate: 20, YTranslate: 30}.Place()
	require.NoError(t, err)
	require.Equal(t, 4, pl.Len())

	ms := pl.Members()
	assert.InDelta(t, 31, ms[0].Solid.Bounds().Center().Y, 1e-9)
	assert.InDelta(t, 21, ms[1].Solid.Bounds().Center().X, 1e-9)
	assert.InDelta(t, -31, ms[2].Solid.Bounds().Center().Y, 1e-9)
	assert.InDelta(t, -21, ms[3].Solid.Bounds().Center().X, 1e-9)
}

func TestPerimeterErrors(t *testing.T) {
	_, err := layout.Perimeter{Unit: panelUnit(), Length: 100}.Place()
	assert.ErrorIs(t, err, layout.ErrInvalidSeries)
	_, err = layout.Perimeter{Length: 100, Width: 100}.Place()
	assert.ErrorIs(t, err, layout.ErrInvalidSeries)
}

func eightBays(t *testing.T) *layout.Placement {
	t.Helper()
	pl, err := layout.Perimeter{Unit: panelUnit(), Length: 64, Width: 64, XTranslate: 32, YTranslate: 32}.Place()
	require.NoError(t, err)
	require.Equal(t, 8, pl.Len())
	return pl
}

func TestMask(t *testing.T) {
	pl := eightBays(t)
	tests := []struct {
		name string
		mask layout.Mask
		want []int
	}{
		{"none", layout.Mask{}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"keep", layout.Mask{Keep: []int{3, 0}}, []int{0, 3}},
		{"skip", layout.Mask{Skip: []int{0}}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"skip wins", layout.Mask{Skip: []int{0}, Keep: []int{1, 2}}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"out of range", layout.Mask{Skip: []int{-1, 99}}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"keep none present", layout.Mask{Keep: []int{42}}, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.mask.Apply(pl)
			if diff := cmp.Diff(tc.want, got.Indices()); diff != "" {
				t.Errorf("indices (-want +got):\n%s", diff)
			}
		})
	}
	assert.Same(t, pl, layout.Mask{}.Apply(pl))
	assert.True(t, csg.IsEmpty(layout.Mask{Keep: []int{42}}.Apply(pl).Solid()))
}

func TestIndexSet(t *testing.T) {
	s := layout.NewIndexSet(3, 0).Union(layout.NewIndexSet(8, 3))
	assert.Equal(t, []int{0, 3, 8}, s.Sorted())
	assert.True(t, s.Has(8))
	assert.False(t, s.Has(1))
}

func TestGrid(t *testing.T) {
	g := layout.Grid{Tile: csg.Box(8, 8, 1), Rows: 4, Columns: 3, PitchX: 10, PitchY: 10, StaggerX: 5}
	gp, err := g.Place()
	require.NoError(t, err)
	require.Equal(t, 12, gp.Len())

	c00, _ := gp.Cell(0, 0)
	c10, _ := gp.Cell(1, 0)
	c20, _ := gp.Cell(2, 0)
	assert.InDelta(t, 5, c10.Center.X-c00.Center.X, 1e-12)
	assert.InDelta(t, 0, c20.Center.X-c00.Center.X, 1e-12)
	assert.InDelta(t, 10, c10.Center.Y-c00.Center.Y, 1e-12)

	// Centered on the midpoint of the tile-center extremes: x in [0, 25], y in [0, 30].
	assert.InDelta(t, -12.5, c00.Center.X, 1e-12)
	assert.InDelta(t, -15, c00.Center.Y, 1e-12)

	for i := 0; i < gp.Len(); i++ {
		r, c := gp.Coordinate(i)
		assert.Equal(t, i, gp.Index(r, c))
	}
	_, ok := gp.Cell(4, 0)
	assert.False(t, ok)
	assert.Equal(t, 12, gp.Members().Len())
}

func TestGridByColumn(t *testing.T) {
	g := layout.Grid{Tile: csg.Box(4, 4, 1), Rows: 2, Columns: 2, PitchX: 6, PitchY: 6, StaggerY: 3, StaggerBy: layout.ByColumn}
	gp, err := g.Place()
	require.NoError(t, err)
	c00, _ := gp.Cell(0, 0)
	c01, _ := gp.Cell(0, 1)
	assert.InDelta(t, 3, c01.Center.Y-c00.Center.Y, 1e-12)
}

func TestGridEdgeCases(t *testing.T) {
	gp, err := layout.Grid{Tile: csg.Box(1, 1, 1), Rows: 0, Columns: 5, PitchX: 1, PitchY: 1}.Place()
	require.NoError(t, err)
	assert.Equal(t, 0, gp.Len())
	assert.True(t, csg.IsEmpty(gp.Solid()))

	for _, g := range []layout.Grid{
		{Rows: 1, Columns: 1, PitchX: 1, PitchY: 1},
		{Tile: csg.Box(1, 1, 1), Rows: -1, Columns: 1, PitchX: 1, PitchY: 1},
		{Tile: csg.Box(1, 1, 1), Rows: 1, Columns: 1, PitchX: 0, PitchY: 1},
	} {
		_, err := g.Place()
		assert.ErrorIs(t, err, layout.ErrInvalidGrid)
	}
}
