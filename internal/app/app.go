package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/tonixchain/brandgen/internal/config"
	"github.com/tonixchain/brandgen/internal/fonts"
	"github.com/tonixchain/brandgen/internal/scenes"
	"github.com/tonixchain/brandgen/internal/state"
)

// Generator renders every scene and writes it under Config.OutDir.
type Generator struct {
	Config config.Config
	Store  *state.Store
	Logger Logger
	// Out receives the human-readable progress lines.
	Out    io.Writer
	Scenes []scenes.Scene
	Clock  func() time.Time

	// renderMu serializes drawing; cached font faces are not goroutine-safe.
	renderMu sync.Mutex
	fonts    *fonts.Resolver
}

func New(cfg config.Config, store *state.Store, logger Logger, out io.Writer) *Generator {
	if store == nil {
		store = state.NewStore()
	}
	if logger == nil {
		logger = NoopLogger{}
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Out:    out,
		Scenes: scenes.All(),
		Clock:  time.Now,
		fonts:  fonts.NewResolver(cfg.FontFile, logger),
	}
}

// Run renders all scenes and saves them as PNG files. The output directory
// is created when missing; other files in it are left alone. The first
// failure aborts the run.
func (g *Generator) Run(ctx context.Context) ([]state.AssetInfo, error) {
	seed := g.seed()
	g.Store.BeginRun(seed)

	assets, err := g.run(ctx, seed)
	g.Store.Finish(err)
	if err != nil {
		g.Logger.Errorf("app", "generation failed: %v", err)
		return assets, err
	}
	return assets, nil
}

func (g *Generator) run(ctx context.Context, seed int64) ([]state.AssetInfo, error) {
	g.printf("Generating Tonix Chain brand assets (seed %d)...\n", seed)
	g.printf("%s\n", strings.Repeat("=", 60))

	if err := os.MkdirAll(g.Config.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", g.Config.OutDir, err)
	}

	assets := make([]state.AssetInfo, 0, len(g.Scenes))
	for i, scene := range g.Scenes {
		if err := ctx.Err(); err != nil {
			return assets, err
		}
		width, height := scene.Size()
		g.printf("\n[%d/%d] Rendering %s (%d×%d)...\n", i+1, len(g.Scenes), scene.Name(), width, height)

		asset, err := g.renderAndSave(scene, sceneSeed(seed, i))
		if err != nil {
			g.Store.RecordAsset(state.AssetInfo{Name: scene.Name(), Path: asset.Path, Err: err.Error()})
			return assets, fmt.Errorf("%s: %w", scene.Name(), err)
		}
		g.Store.RecordAsset(asset)
		assets = append(assets, asset)
		g.printf("   saved %s\n", asset.Path)
	}

	g.printf("\n%s\n", strings.Repeat("=", 60))
	g.printf("All images generated:\n")
	for _, asset := range assets {
		g.printf("   - %s\n", asset.Path)
	}
	return assets, nil
}

func (g *Generator) renderAndSave(scene scenes.Scene, seed int64) (state.AssetInfo, error) {
	path := filepath.Join(g.Config.OutDir, scene.Filename())
	asset := state.AssetInfo{Name: scene.Name(), Path: path}
	started := g.Clock()

	img, err := g.render(scene, seed)
	if err != nil {
		return asset, err
	}
	if err := imaging.Save(img, path); err != nil {
		return asset, fmt.Errorf("save %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return asset, err
	}

	asset.Width = img.Bounds().Dx()
	asset.Height = img.Bounds().Dy()
	asset.Bytes = info.Size()
	asset.Duration = g.Clock().Sub(started)
	g.Logger.Infof("app", "wrote %s (%d bytes) in %s", path, asset.Bytes, asset.Duration)
	return asset, nil
}

// Render draws one scene by name without touching the filesystem. With the
// same seed it produces the same pixels Run writes for that scene.
func (g *Generator) Render(name string, seed int64) (*image.RGBA, error) {
	for i, scene := range g.Scenes {
		if scene.Name() == name {
			return g.render(scene, sceneSeed(seed, i))
		}
	}
	return nil, fmt.Errorf("%w: %q", scenes.ErrUnknownScene, name)
}

func (g *Generator) render(scene scenes.Scene, seed int64) (*image.RGBA, error) {
	g.renderMu.Lock()
	defer g.renderMu.Unlock()

	env := scenes.DefaultEnv(g.fonts, rand.New(rand.NewSource(seed)))
	env.TitleFont = g.Config.TitleFont
	env.BodyFont = g.Config.BodyFont
	env.LogoHalo = g.Config.LogoHalo
	env.QRURL = g.Config.QRURL
	return scene.Render(env)
}

// seed returns the configured seed, or one taken from the clock.
func (g *Generator) seed() int64 {
	if g.Config.Seed != 0 {
		return g.Config.Seed
	}
	seed := g.Clock().UnixNano()
	g.Logger.Infof("app", "no seed configured, using %d", seed)
	return seed
}

// sceneSeed gives every scene its own stream so a scene renders the same
// whether it is drawn alone or as part of a run.
func sceneSeed(seed int64, index int) int64 {
	return seed + int64(index)
}

func (g *Generator) printf(format string, args ...interface{}) {
	fmt.Fprintf(g.Out, format, args...)
}
