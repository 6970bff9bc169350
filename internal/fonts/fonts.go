package fonts

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/tonixchain/brandgen/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Resolver hands out font faces by name and pixel size.
//
// Lookup order: the user font file (when configured), the embedded font of
// that name, and finally basicfont.Face7x13. Every step that fails is
// logged and skipped, so Face never returns nil.
//
// Faces are cached and are not safe for concurrent drawing; callers that
// render from several goroutines must serialize.
type Resolver struct {
	FontFile string
	Logger   Logger

	mu       sync.Mutex
	user     *source
	userDone bool
	sources  map[string]*source
	faces    map[faceKey]font.Face
}

type faceKey struct {
	name string
	size float64
}

func NewResolver(fontFile string, logger Logger) *Resolver {
	return &Resolver{FontFile: fontFile, Logger: logger}
}

// Face returns a face for name at sizePx pixels (72 DPI, so points equal pixels).
func (r *Resolver) Face(name string, sizePx float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := faceKey{name: name, size: sizePx}
	if face, ok := r.faces[key]; ok {
		return face
	}
	if r.faces == nil {
		r.faces = make(map[faceKey]font.Face)
	}

	face := r.newFace(name, sizePx)
	r.faces[key] = face
	return face
}

// Supported returns text without the runes the font named name has no glyph
// for, plus the dropped runes. Emoji are the usual casualty.
func (r *Resolver) Supported(name, text string) (string, []rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src := r.sourceFor(name)

	var kept strings.Builder
	var dropped []rune
	for _, ch := range text {
		if src.covers(ch) {
			kept.WriteRune(ch)
			continue
		}
		dropped = append(dropped, ch)
	}
	if len(dropped) == 0 {
		return text, nil
	}
	out := strings.TrimSpace(kept.String())
	r.infof("dropped %d unsupported rune(s) %q from %q", len(dropped), string(dropped), text)
	return out, dropped
}

func (r *Resolver) newFace(name string, sizePx float64) font.Face {
	src := r.sourceFor(name)
	face, err := src.newFace(sizePx)
	if err != nil {
		r.errorf("font %s face create failed, using basicfont: %v", src.label, err)
		return basicfont.Face7x13
	}
	return face
}

// sourceFor must be called with r.mu held.
func (r *Resolver) sourceFor(name string) *source {
	if user := r.userSource(); user != nil {
		return user
	}
	if r.sources == nil {
		r.sources = make(map[string]*source)
	}
	if src, ok := r.sources[name]; ok {
		return src
	}

	data, ok := assets.Fonts[name]
	if !ok {
		r.errorf("unknown font %q, using %s", name, assets.FontRegular)
		data = assets.Fonts[assets.FontRegular]
	}
	src, err := parseSource(name, data)
	if err != nil {
		r.errorf("font %s parse failed, using basicfont: %v", name, err)
		src = basicSource()
	}
	r.sources[name] = src
	return src
}

func (r *Resolver) userSource() *source {
	if r.userDone {
		return r.user
	}
	r.userDone = true
	if r.FontFile == "" {
		return nil
	}
	data, err := os.ReadFile(r.FontFile)
	if err != nil {
		r.errorf("font file %s unreadable, using embedded fonts: %v", r.FontFile, err)
		return nil
	}
	src, err := parseSource(r.FontFile, data)
	if err != nil {
		r.errorf("font file %s parse failed, using embedded fonts: %v", r.FontFile, err)
		return nil
	}
	r.infof("loaded font file %s", r.FontFile)
	r.user = src
	return src
}

func (r *Resolver) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("fonts", format, args...)
	}
}

func (r *Resolver) errorf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Errorf("fonts", format, args...)
	}
}

// source is one parsed font. Exactly one of otf and ttf is set, or neither
// for the basicfont fallback.
type source struct {
	label string
	otf   *opentype.Font
	ttf   *truetype.Font
	buf   sfnt.Buffer
}

// parseSource tries opentype first and the freetype parser second; some
// older TrueType files only load with the latter.
func parseSource(label string, data []byte) (*source, error) {
	otf, otfErr := opentype.Parse(data)
	if otfErr == nil {
		return &source{label: label, otf: otf}, nil
	}
	ttf, ttfErr := truetype.Parse(data)
	if ttfErr == nil {
		return &source{label: label, ttf: ttf}, nil
	}
	return nil, fmt.Errorf("opentype: %v; truetype: %w", otfErr, ttfErr)
}

func basicSource() *source { return &source{label: "basicfont"} }

func (s *source) newFace(sizePx float64) (font.Face, error) {
	switch {
	case s.otf != nil:
		return opentype.NewFace(s.otf, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	case s.ttf != nil:
		return truetype.NewFace(s.ttf, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull}), nil
	}
	return basicfont.Face7x13, nil
}

func (s *source) covers(ch rune) bool {
	switch {
	case s.otf != nil:
		index, err := s.otf.GlyphIndex(&s.buf, ch)
		return err == nil && index != 0
	case s.ttf != nil:
		return s.ttf.Index(ch) != 0
	}
	_, ok := basicfont.Face7x13.GlyphAdvance(ch)
	return ok && ch < 0x7f
}
