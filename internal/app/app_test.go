package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonixchain/brandgen/internal/config"
	"github.com/tonixchain/brandgen/internal/scenes"
	"github.com/tonixchain/brandgen/internal/state"
)

func newTestGenerator(t *testing.T, outDir string, seed int64) (*Generator, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.OutDir = outDir
	cfg.Seed = seed
	var out bytes.Buffer
	return New(cfg, state.NewStore(), nil, &out), &out
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRunWritesBothAssets(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "public")
	gen, out := newTestGenerator(t, outDir, 2024)

	want := map[string]image.Rectangle{
		"og-image.png":       image.Rect(0, 0, 1200, 630),
		"telegram-cover.png": image.Rect(0, 0, 1280, 720),
	}

	for run := 0; run < 2; run++ {
		assets, err := gen.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, assets, 2)

		for name, bounds := range want {
			path := filepath.Join(outDir, name)
			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Greater(t, info.Size(), int64(0))
			require.Equal(t, bounds, decodePNG(t, path).Bounds())
		}
	}

	snap := gen.Store.Snapshot()
	assert.Equal(t, state.DONE, snap.Phase)
	assert.Equal(t, 2, snap.Runs)
	assert.Equal(t, int64(2024), snap.Seed)
	assert.Len(t, snap.Assets, 2)
	assert.Equal(t, 1200, snap.Assets[0].Width)

	assert.Contains(t, out.String(), "[1/2] Rendering og-image (1200×630)")
	assert.Contains(t, out.String(), "[2/2] Rendering telegram-cover (1280×720)")
	assert.Contains(t, out.String(), filepath.Join(outDir, "telegram-cover.png"))
}

func TestRunKeepsUnrelatedFiles(t *testing.T) {
	outDir := t.TempDir()
	keep := filepath.Join(outDir, "favicon.ico")
	require.NoError(t, os.WriteFile(keep, []byte("icon"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "og-image.png"), []byte("stale"), 0o644))

	gen, _ := newTestGenerator(t, outDir, 1)
	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(keep)
	require.NoError(t, err)
	require.Equal(t, "icon", string(data))
	require.Equal(t, image.Rect(0, 0, 1200, 630), decodePNG(t, filepath.Join(outDir, "og-image.png")).Bounds())
}

func TestRenderMatchesWrittenFile(t *testing.T) {
	outDir := t.TempDir()
	gen, _ := newTestGenerator(t, outDir, 77)
	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	rendered, err := gen.Render("telegram-cover", 77)
	require.NoError(t, err)
	written := decodePNG(t, filepath.Join(outDir, "telegram-cover.png"))

	for y := 0; y < 720; y += 7 {
		for x := 0; x < 1280; x += 7 {
			r1, g1, b1, _ := rendered.At(x, y).RGBA()
			r2, g2, b2, _ := written.At(x, y).RGBA()
			require.Equal(t, [3]uint32{r1, g1, b1}, [3]uint32{r2, g2, b2}, "pixel %d,%d", x, y)
		}
	}
}

func TestRenderUnknownScene(t *testing.T) {
	gen, _ := newTestGenerator(t, t.TempDir(), 1)
	_, err := gen.Render("banner", 1)
	require.True(t, errors.Is(err, scenes.ErrUnknownScene))
}

func TestRunUsesClockSeedWhenUnset(t *testing.T) {
	gen, out := newTestGenerator(t, t.TempDir(), 0)
	gen.Clock = func() time.Time { return time.Unix(0, 555) }

	_, err := gen.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(555), gen.Store.Snapshot().Seed)
	require.Contains(t, out.String(), "seed 555")
}

func TestRunFailsWhenOutDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	gen, _ := newTestGenerator(t, blocker, 1)
	_, err := gen.Run(context.Background())
	require.Error(t, err)

	snap := gen.Store.Snapshot()
	require.Equal(t, state.ERROR, snap.Phase)
	require.NotEmpty(t, snap.Err)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen, _ := newTestGenerator(t, t.TempDir(), 1)
	assets, err := gen.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, assets)
}

func TestLogrusLoggerLevels(t *testing.T) {
	var quiet bytes.Buffer
	logger := NewLogrusLogger(&quiet, false, false)
	logger.Infof("app", "hidden %d", 1)
	logger.Errorf("fonts", "shown %d", 2)
	require.NotContains(t, quiet.String(), "hidden")
	require.Contains(t, quiet.String(), "shown 2")
	require.Contains(t, quiet.String(), "component=fonts")

	var verbose bytes.Buffer
	logger = NewLogrusLogger(&verbose, true, true)
	logger.Infof("app", "visible")
	require.Contains(t, verbose.String(), `"component":"app"`)
	require.Contains(t, verbose.String(), `"msg":"visible"`)
}
