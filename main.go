package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disintegration/imaging"
	"github.com/tonixchain/brandgen/internal/app"
	"github.com/tonixchain/brandgen/internal/config"
	"github.com/tonixchain/brandgen/internal/display"
	"github.com/tonixchain/brandgen/internal/palette"
	"github.com/tonixchain/brandgen/internal/state"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Println("env file error:", err)
		return 2
	}
	defaults, err := config.FromEnv(config.Default())
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "output directory; also configurable via "+config.EnvOutDir)
	seed := flag.Int64("seed", defaults.Seed, "starfield seed, 0 picks one from the clock; also configurable via "+config.EnvSeed)
	halo := flag.Bool("halo", defaults.LogoHalo, "draw the halo around the hexagon logo; also configurable via "+config.EnvLogoHalo)
	fontFile := flag.String("font-file", defaults.FontFile, "TTF/OTF file used for all text; also configurable via "+config.EnvFontFile)
	titleFont := flag.String("title-font", defaults.TitleFont, "embedded font for titles; also configurable via "+config.EnvTitleFont)
	bodyFont := flag.String("body-font", defaults.BodyFont, "embedded font for slogans and buttons; also configurable via "+config.EnvBodyFont)
	qrURL := flag.String("qr-url", defaults.QRURL, "place a QR code for this URL on the telegram cover; also configurable via "+config.EnvQRURL)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	debug := flag.Bool("debug", false, "enable debug logging on stderr")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	fbDevice := flag.String("fb", "", "show the telegram cover on this framebuffer device after generating, e.g. /dev/fb0")
	fbHold := flag.Duration("fb-hold", 10*time.Second, "how long the framebuffer preview stays up")
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	logger := app.NewLogrusLogger(os.Stderr, *debug, *logJSON)
	logger.Infof("main", "debug logging enabled")

	cfg := defaults
	cfg.OutDir = *outDir
	cfg.Seed = *seed
	cfg.LogoHalo = *halo
	cfg.FontFile = *fontFile
	cfg.TitleFont = *titleFont
	cfg.BodyFont = *bodyFont
	cfg.QRURL = *qrURL
	cfg.StdioLog = *stdioLog
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := app.New(cfg, state.NewStore(), logger, os.Stdout)
	assets, err := generator.Run(ctx)
	if err != nil {
		fmt.Println("generation error:", err)
		return 1
	}

	if *fbDevice != "" && len(assets) > 0 {
		if err := showOnFramebuffer(ctx, *fbDevice, assets[len(assets)-1], *fbHold, logger); err != nil {
			// The files are already written; a missing screen is not fatal.
			logger.Errorf("fb", "preview on %s failed: %v", *fbDevice, err)
		}
	}
	return 0
}

func showOnFramebuffer(ctx context.Context, device string, asset state.AssetInfo, hold time.Duration, logger app.Logger) error {
	img, err := imaging.Open(asset.Path)
	if err != nil {
		return err
	}
	fb := display.NewFramebuffer(device, palette.Brand.MustRGBA("dark_bg"), logger)
	err = fb.Show(ctx, img, hold)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
