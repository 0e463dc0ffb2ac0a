package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"pkt.systems/icat"
)

const (
	progName = "icat"
	version  = "v0.1"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	opts icat.Options

	nonprintingEnds bool
	nonprintingTabs bool
	unbuffered      bool
	color           string
	palette         string
	help            bool
	version         bool
}

func newFlagSet(cfg *config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVarP(&cfg.opts.ShowAll, "show-all", "A", false, "equivalent to -vET")
	fs.BoolVarP(&cfg.opts.NumberNonblank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	fs.BoolVarP(&cfg.nonprintingEnds, "show-nonprinting-ends", "e", false, "equivalent to -vE")
	fs.BoolVarP(&cfg.opts.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	fs.BoolVarP(&cfg.opts.Number, "number", "n", false, "number all output lines")
	fs.BoolVarP(&cfg.opts.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	fs.BoolVarP(&cfg.nonprintingTabs, "show-nonprinting-tabs", "t", false, "equivalent to -vT")
	fs.BoolVarP(&cfg.opts.ShowTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	fs.BoolVarP(&cfg.unbuffered, "unbuffered", "u", false, "(ignored)")
	fs.BoolVarP(&cfg.opts.ShowNonprinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	fs.StringVar(&cfg.color, "color", "never", "colorize line numbers and markers: auto, always or never")
	fs.StringVar(&cfg.palette, "palette", "default", "color palette ("+strings.Join(icat.PaletteNames(), ", ")+")")
	fs.BoolVarP(&cfg.help, "help", "h", false, "display this help and exit")
	fs.BoolVar(&cfg.version, "version", false, "output version information and exit")
	return fs
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [OPTION]... [FILE]...\n", progName)
	fmt.Fprintln(w, "Concatenate FILE(s) to standard output.")
	fmt.Fprintln(w, "With no FILE, or when FILE is -, read standard input.")
	fmt.Fprintln(w)
	fmt.Fprint(w, fs.FlagUsages())
}

// run is main without the process exit so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		usage(stderr, fs)
		return 1
	}
	if cfg.help {
		usage(stdout, fs)
		return 0
	}
	if cfg.version {
		fmt.Fprintf(stdout, "%s %s\n", progName, version)
		return 0
	}

	if cfg.nonprintingEnds {
		cfg.opts.ShowNonprinting = true
		cfg.opts.ShowEnds = true
	}
	if cfg.nonprintingTabs {
		cfg.opts.ShowNonprinting = true
		cfg.opts.ShowTabs = true
	}
	tty := isTerminal(stdout)
	colorize, err := wantColor(cfg.color, tty)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 1
	}
	if err := icat.ValidatePalette(cfg.palette); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 1
	}
	cfg.opts.Palette = "none"
	if colorize {
		cfg.opts.Palette = cfg.palette
	}
	opts := cfg.opts.Normalize()

	out := newOutput(stdout, tty)
	st := icat.NewState()
	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	status := 0
	for _, name := range names {
		err := catSource(out, name, stdin, &opts, st)
		if err == nil {
			continue
		}
		if icat.IsWriteError(err) {
			fmt.Fprintf(stderr, "%s: stdout: %s\n", progName, icat.Describe(err))
			return 1
		}
		var re *icat.ReadError
		if errors.As(err, &re) {
			fmt.Fprintf(stderr, "%s: %s: %s\n", progName, re.Name, icat.Describe(err))
			status = 1
			continue
		}
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 1
	}
	return status
}

// catSource streams one named source into out. "-" is stdin, which is
// reported as "stdin" in errors and never closed.
func catSource(out *output, name string, stdin io.Reader, opts *icat.Options, st *icat.State) error {
	if name == "-" {
		err := icat.Transform(out, stdin, opts, st)
		return finishSource(out, "stdin", err)
	}
	f, err := os.Open(name)
	if err != nil {
		return &icat.ReadError{Name: name, Err: err}
	}
	err = icat.Transform(out, f, opts, st)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = &icat.ReadError{Err: cerr}
	}
	return finishSource(out, name, err)
}

// finishSource flushes buffered output after a source and names a read
// failure. A failed flush outranks the read failure.
func finishSource(out *output, name string, err error) error {
	if icat.IsWriteError(err) {
		return err
	}
	if ferr := out.Flush(); ferr != nil {
		return &icat.WriteError{Err: ferr}
	}
	if re, ok := err.(*icat.ReadError); ok {
		re.Name = name
	}
	return err
}

// output buffers stdout like stdio does: line buffered on a terminal and
// block buffered otherwise.
type output struct {
	*bufio.Writer
	lineBuffered bool
}

func newOutput(w io.Writer, lineBuffered bool) *output {
	return &output{Writer: bufio.NewWriter(w), lineBuffered: lineBuffered}
}

func (o *output) WriteByte(c byte) error {
	if err := o.Writer.WriteByte(c); err != nil {
		return err
	}
	if c == '\n' && o.lineBuffered {
		return o.Flush()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func wantColor(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return tty, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (use auto, always or never)", mode)
	}
}
