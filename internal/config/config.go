package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tonixchain/brandgen/internal/assets"
)

const (
	EnvOutDir    = "BRANDGEN_OUT_DIR"
	EnvSeed      = "BRANDGEN_SEED"
	EnvLogoHalo  = "BRANDGEN_LOGO_HALO"
	EnvFontFile  = "BRANDGEN_FONT_FILE"
	EnvTitleFont = "BRANDGEN_TITLE_FONT"
	EnvBodyFont  = "BRANDGEN_BODY_FONT"
	EnvQRURL     = "BRANDGEN_QR_URL"
	EnvStdioLog  = "BRANDGEN_STDIO_LOG"
)

// Config contains settings for one generation run. The zero-flag, zero-env
// defaults reproduce the stock brand assets.
type Config struct {
	OutDir string
	// Seed drives the starfield. Zero means pick one from the clock.
	Seed      int64
	LogoHalo  bool
	FontFile  string
	TitleFont string
	BodyFont  string
	QRURL     string
	StdioLog  string
}

func Default() Config {
	return Config{
		OutDir:    "public",
		LogoHalo:  true,
		TitleFont: assets.FontBold,
		BodyFont:  assets.FontRegular,
	}
}

// LoadDotEnv loads variables from the given files (".env" when none) into
// the process environment. Missing files are skipped; variables that are
// already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// FromEnv overlays BRANDGEN_* environment variables on defaults.
func FromEnv(defaults Config) (Config, error) {
	cfg := defaults

	if raw := os.Getenv(EnvOutDir); raw != "" {
		cfg.OutDir = raw
	}
	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvSeed, raw, err)
		}
		cfg.Seed = parsed
	}
	if raw := os.Getenv(EnvLogoHalo); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvLogoHalo, raw, err)
		}
		cfg.LogoHalo = parsed
	}
	if raw := os.Getenv(EnvFontFile); raw != "" {
		cfg.FontFile = raw
	}
	if raw := os.Getenv(EnvTitleFont); raw != "" {
		cfg.TitleFont = raw
	}
	if raw := os.Getenv(EnvBodyFont); raw != "" {
		cfg.BodyFont = raw
	}
	if raw := os.Getenv(EnvQRURL); raw != "" {
		cfg.QRURL = raw
	}
	if raw := os.Getenv(EnvStdioLog); raw != "" {
		cfg.StdioLog = raw
	}

	return cfg, nil
}

// Validate reports settings that would make every run fail or silently
// fall back.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("output directory must not be empty")
	}
	for _, name := range []string{cfg.TitleFont, cfg.BodyFont} {
		if _, ok := assets.Fonts[name]; !ok {
			return fmt.Errorf("unknown font %q (embedded: %s)", name, strings.Join(assets.FontNames(), ", "))
		}
	}
	return nil
}
