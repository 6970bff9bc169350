package assets

import (
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Font names accepted by configuration.
const (
	FontRegular = "go-regular"
	FontMedium  = "go-medium"
	FontBold    = "go-bold"
)

// Fonts maps font names to embedded TTF bytes. The Go font family covers
// Latin and Cyrillic, which is everything the brand strings need.
var Fonts = map[string][]byte{
	FontRegular: goregular.TTF,
	FontMedium:  gomedium.TTF,
	FontBold:    gobold.TTF,
}

// FontNames lists the embedded fonts, sorted.
func FontNames() []string {
	names := make([]string, 0, len(Fonts))
	for name := range Fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
