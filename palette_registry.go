package icat

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/icat/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName:    ansi.PaletteDefault,
	"mono":                ansi.PaletteMono,
	"catppuccin-mocha":    ansi.PaletteCatppuccinMocha,
	"doom-dracula":        ansi.PaletteDoomDracula,
	"doom-gruvbox":        ansi.PaletteDoomGruvbox,
	"doom-nord":           ansi.PaletteDoomNord,
	"gruvbox-light":       ansi.PaletteGruvboxLight,
	"monokai-vibrant":     ansi.PaletteMonokaiVibrant,
	"solarized-nightfall": ansi.PaletteSolarizedNightfall,
	"synthwave84":         ansi.PaletteSynthwave84,
	"tokyo-night":         ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ValidatePalette reports whether name can be used as Options.Palette.
func ValidatePalette(name string) error {
	_, err := resolvePalette(name)
	return err
}

// resolvePalette maps a palette name to its escape sequences. An empty name
// and "none" both yield the zero Palette, which disables colouring.
func resolvePalette(name string) (ansi.Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == paletteNoneName {
		return ansi.Palette{}, nil
	}
	p, ok := paletteRegistry[name]
	if !ok {
		return ansi.Palette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return p, nil
}
