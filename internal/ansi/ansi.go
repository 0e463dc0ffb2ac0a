// Package ansi provides ANSI escape sequences and palette presets for the
// synthetic parts of icat output. The 256-colour values are derived from
// pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	BrightRed     = "\x1b[1;31m"
	BrightYellow  = "\x1b[1;33m"
	BrightMagenta = "\x1b[1;35m"
)

// Palette holds one escape sequence per kind of synthetic output. An empty
// field leaves that kind unstyled.
type Palette struct {
	// Number styles the line-number prefix.
	Number string
	// End styles the '$' written before a newline.
	End string
	// Tab styles ^I.
	Tab string
	// Control styles caret notation for control bytes and DEL.
	Control string
	// Meta styles M- notation for bytes with the high bit set.
	Meta string
}

// PaletteDefault is 16-colour friendly.
var PaletteDefault = Palette{
	Number:  Faint,
	End:     Cyan,
	Tab:     Blue,
	Control: BrightYellow,
	Meta:    BrightMagenta,
}

// PaletteMono uses weight only, for terminals without colour.
var PaletteMono = Palette{
	Number:  Faint,
	End:     Bold,
	Tab:     Bold,
	Control: Bold,
	Meta:    Bold,
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Number:  "\x1b[38;5;137m",
	End:     "\x1b[38;5;101m",
	Tab:     "\x1b[38;5;142m",
	Control: "\x1b[38;5;208m",
	Meta:    "\x1b[38;5;167m",
}

// PaletteDoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var PaletteDoomDracula = Palette{
	Number:  "\x1b[38;5;95m",
	End:     "\x1b[38;5;147m",
	Tab:     "\x1b[38;5;81m",
	Control: "\x1b[38;5;219m",
	Meta:    "\x1b[38;5;204m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Number:  "\x1b[38;5;109m",
	End:     "\x1b[38;5;110m",
	Tab:     "\x1b[38;5;115m",
	Control: "\x1b[38;5;179m",
	Meta:    "\x1b[38;5;210m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Number:  "\x1b[38;5;244m",
	End:     "\x1b[38;5;74m",
	Tab:     "\x1b[38;5;117m",
	Control: "\x1b[38;5;173m",
	Meta:    "\x1b[38;5;176m",
}

// PaletteSolarizedNightfall adapts Solarized Night with teal highlights and amber warnings.
var PaletteSolarizedNightfall = Palette{
	Number:  "\x1b[38;5;244m",
	End:     "\x1b[38;5;37m",
	Tab:     "\x1b[38;5;33m",
	Control: "\x1b[38;5;136m",
	Meta:    "\x1b[38;5;160m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels.
var PaletteCatppuccinMocha = Palette{
	Number:  "\x1b[38;5;244m",
	End:     "\x1b[38;5;182m",
	Tab:     "\x1b[38;5;152m",
	Control: "\x1b[38;5;216m",
	Meta:    "\x1b[38;5;211m",
}

// PaletteGruvboxLight is a Gruvbox light variant with warm browns and turquoise hints.
var PaletteGruvboxLight = Palette{
	Number:  "\x1b[38;5;180m",
	End:     "\x1b[38;5;136m",
	Tab:     "\x1b[38;5;66m",
	Control: "\x1b[38;5;173m",
	Meta:    "\x1b[38;5;167m",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Number:  "\x1b[38;5;59m",
	End:     "\x1b[38;5;141m",
	Tab:     "\x1b[38;5;118m",
	Control: "\x1b[38;5;215m",
	Meta:    "\x1b[38;5;197m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas and cyans.
var PaletteSynthwave84 = Palette{
	Number:  "\x1b[38;5;102m",
	End:     "\x1b[38;5;45m",
	Tab:     "\x1b[38;5;219m",
	Control: "\x1b[38;5;220m",
	Meta:    "\x1b[38;5;205m",
}
