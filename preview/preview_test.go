package preview_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/bunker"
	"github.com/katalvlaran/terrain/internal/monitoring"
	"github.com/katalvlaran/terrain/preview"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func made(t *testing.T) *bunker.Bunker {
	t.Helper()
	b := bunker.Default()
	require.NoError(t, b.Make())
	return b
}

func TestClaimOf(t *testing.T) {
	cases := []struct {
		bay  bunker.Bay
		want preview.Claim
	}{
		{bunker.Bay{Door: true, Window: true}, preview.ClaimDoor},
		{bunker.Bay{Ladder: true, Hatch: true}, preview.ClaimLadder},
		{bunker.Bay{Window: true}, preview.ClaimWindow},
		{bunker.Bay{FloorCut: true}, preview.ClaimOpen},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, preview.ClaimOf(c.bay))
	}
	assert.Equal(t, "ladder", preview.ClaimLadder.String())
	assert.Equal(t, "Claim(9)", preview.Claim(9).String())
}

func TestPlotBeforeMake(t *testing.T) {
	_, err := preview.Plot(bunker.Default())
	assert.ErrorIs(t, err, terrain.ErrNotInitialized)
}

func TestPlotCoversFootprint(t *testing.T) {
	b := made(t)
	p, err := preview.Plot(b)
	require.NoError(t, err)

	f := b.Config.Footprint
	assert.LessOrEqual(t, p.X.Min, -f.Length/2)
	assert.GreaterOrEqual(t, p.X.Max, f.Length/2)
	assert.LessOrEqual(t, p.Y.Min, -f.Width/2)
	assert.GreaterOrEqual(t, p.Y.Max, f.Width/2)
	assert.Contains(t, p.Title.Text, "bays")
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, preview.Render(&buf, made(t), preview.DefaultSize, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, preview.Render(&buf, made(t), preview.DefaultSize, "bmp-ish"))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bays.png")
	require.NoError(t, preview.Save(path, made(t)))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
