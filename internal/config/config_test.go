package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tonixchain/brandgen/internal/assets"
)

func TestDefaultsWithoutEnv(t *testing.T) {
	for _, key := range []string{EnvOutDir, EnvSeed, EnvLogoHalo, EnvFontFile, EnvTitleFont, EnvBodyFont, EnvQRURL, EnvStdioLog} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "public", cfg.OutDir)
	require.True(t, cfg.LogoHalo)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvOutDir, "dist/brand")
	t.Setenv(EnvSeed, " 1234 ")
	t.Setenv(EnvLogoHalo, "false")
	t.Setenv(EnvTitleFont, assets.FontMedium)
	t.Setenv(EnvQRURL, "https://t.me/tonixchain")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	require.Equal(t, "dist/brand", cfg.OutDir)
	require.Equal(t, int64(1234), cfg.Seed)
	require.False(t, cfg.LogoHalo)
	require.Equal(t, assets.FontMedium, cfg.TitleFont)
	require.Equal(t, assets.FontRegular, cfg.BodyFont)
	require.Equal(t, "https://t.me/tonixchain", cfg.QRURL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv(EnvSeed, "lots")
	_, err := FromEnv(Default())
	require.ErrorContains(t, err, EnvSeed)

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogoHalo, "maybe")
	_, err = FromEnv(Default())
	require.ErrorContains(t, err, EnvLogoHalo)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.OutDir = " "
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.BodyFont = "comic-sans"
	require.ErrorContains(t, cfg.Validate(), "comic-sans")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BRANDGEN_QR_URL=https://example.org\n"), 0o644))

	t.Setenv(EnvQRURL, "")
	require.NoError(t, os.Unsetenv(EnvQRURL))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	require.Equal(t, "https://example.org", os.Getenv(EnvQRURL))
}
