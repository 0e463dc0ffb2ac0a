package icat

// Options selects the display transformations applied by Transform. The zero
// value copies input to output unchanged.
type Options struct {
	// ShowAll is shorthand for ShowNonprinting, ShowEnds and ShowTabs
	// together (cat -A). It has no meaning of its own once normalized.
	ShowAll bool
	// NumberNonblank numbers non-empty lines only (cat -b). It overrides
	// Number.
	NumberNonblank bool
	// ShowEnds writes '$' before every newline (cat -E).
	ShowEnds bool
	// Number numbers every output line (cat -n).
	Number bool
	// SqueezeBlank collapses runs of empty lines into one (cat -s).
	SqueezeBlank bool
	// ShowTabs writes TAB as ^I (cat -T).
	ShowTabs bool
	// ShowNonprinting uses ^ and M- notation for everything except newline
	// and TAB (cat -v).
	ShowNonprinting bool
	// Palette names the colour palette used for line numbers and markers.
	// Empty or "none" disables colour; see PaletteNames.
	Palette string
}

// DefaultOptions is the passthrough configuration used when a nil *Options is
// given.
var DefaultOptions = &Options{}

// Normalize returns a copy of o with ShowAll expanded and Number cleared when
// NumberNonblank is set.
func (o Options) Normalize() Options {
	if o.ShowAll {
		o.ShowNonprinting = true
		o.ShowEnds = true
		o.ShowTabs = true
		o.ShowAll = false
	}
	if o.NumberNonblank {
		o.Number = false
	}
	return o
}
