package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tonixchain/brandgen/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type recordingLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

func TestEmbeddedFacesScaleWithSize(t *testing.T) {
	resolver := NewResolver("", nil)

	for _, name := range assets.FontNames() {
		small := resolver.Face(name, 32)
		large := resolver.Face(name, 96)
		require.NotEqual(t, basicfont.Face7x13, small, name)

		smallWidth := font.MeasureString(small, "TONIX CHAIN")
		largeWidth := font.MeasureString(large, "TONIX CHAIN")
		require.Greater(t, largeWidth, smallWidth*2, name)
	}
}

func TestFacesAreCached(t *testing.T) {
	resolver := NewResolver("", nil)
	first := resolver.Face(assets.FontBold, 64)
	second := resolver.Face(assets.FontBold, 64)
	require.Same(t, first, second)
}

func TestUnknownFontFallsBackToRegular(t *testing.T) {
	logger := &recordingLogger{}
	resolver := NewResolver("", logger)

	face := resolver.Face("helvetica", 48)
	require.NotEqual(t, basicfont.Face7x13, face)
	require.NotEmpty(t, logger.errors)
}

func TestMissingFontFileFallsBackToEmbedded(t *testing.T) {
	logger := &recordingLogger{}
	resolver := NewResolver(filepath.Join(t.TempDir(), "missing.ttf"), logger)

	face := resolver.Face(assets.FontBold, 48)
	require.NotEqual(t, basicfont.Face7x13, face)
	require.Len(t, logger.errors, 1)
}

func TestCorruptFontFileFallsBackToEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	logger := &recordingLogger{}
	resolver := NewResolver(path, logger)

	face := resolver.Face(assets.FontRegular, 36)
	require.NotEqual(t, basicfont.Face7x13, face)
	require.NotEmpty(t, logger.errors)
}

func TestFontFileOverridesEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	require.NoError(t, os.WriteFile(path, assets.Fonts[assets.FontBold], 0o644))

	logger := &recordingLogger{}
	resolver := NewResolver(path, logger)

	custom := font.MeasureString(resolver.Face(assets.FontRegular, 40), "TONIX")
	bold := font.MeasureString(NewResolver("", nil).Face(assets.FontBold, 40), "TONIX")
	require.Equal(t, bold, custom)
	require.Empty(t, logger.errors)
}

func TestSupportedDropsEmoji(t *testing.T) {
	logger := &recordingLogger{}
	resolver := NewResolver("", logger)

	text, dropped := resolver.Supported(assets.FontRegular, "ЛОТЕРЕЯ БУДУЩЕГО НА TON 💎")
	require.Equal(t, "ЛОТЕРЕЯ БУДУЩЕГО НА TON", text)
	require.Equal(t, []rune{'💎'}, dropped)
	require.Len(t, logger.infos, 1)
}

func TestSupportedKeepsCoveredText(t *testing.T) {
	resolver := NewResolver("", nil)

	text, dropped := resolver.Supported(assets.FontBold, "TONIX CHAIN")
	require.Equal(t, "TONIX CHAIN", text)
	require.Empty(t, dropped)
}

func TestBasicSourceCoversASCIIOnly(t *testing.T) {
	src := basicSource()
	require.True(t, src.covers('T'))
	require.False(t, src.covers('Л'))
}
