package icat

import (
	"errors"
	"io"

	"pkt.systems/icat/internal/ansi"
)

const (
	lineNumberWidth = 6
	maxEmptyReads   = 100
)

var (
	tabMarker = []byte("^I")
	endMarker = []byte{'$'}
)

var errNilState = errors.New("icat: nil *State")

// Transform copies r to w one byte at a time, applying the display
// transformations selected by opts (nil means DefaultOptions). st carries the
// line number and line-start bookkeeping from earlier calls of the same run
// and is updated in place; a zero State is treated like NewState.
//
// Transform does not close r. A failure reading r is returned as a
// *ReadError after every byte read before it has been written. A failure
// writing w is returned as a *WriteError and stops processing at once.
func Transform(w io.Writer, r io.Reader, opts *Options, st *State) error {
	if st == nil {
		return errNilState
	}
	if opts == nil {
		opts = DefaultOptions
	}
	o := opts.Normalize()
	pal, err := resolvePalette(o.Palette)
	if err != nil {
		return err
	}
	st.fresh()

	t := acquireTransformer()
	defer releaseTransformer(t)
	t.reset(r, w, &o, pal, st)
	return t.run()
}

type transformer struct {
	scanner scanner
	fmt     formatter
	opts    Options
	st      *State
}

func (t *transformer) reset(r io.Reader, w io.Writer, opts *Options, pal ansi.Palette, st *State) {
	t.scanner.Reset(r)
	t.fmt.reset(w, pal)
	t.opts = *opts
	t.st = st
}

func (t *transformer) clear() {
	t.scanner.Reset(nil)
	t.fmt.clear()
	t.opts = Options{}
	t.st = nil
}

func (t *transformer) run() error {
	for {
		b, err := t.scanner.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &ReadError{Err: err}
		}
		if err := t.step(b); err != nil {
			return &WriteError{Err: err}
		}
	}
}

// step handles one input byte. Only write failures are returned.
func (t *transformer) step(b byte) error {
	st := t.st
	o := &t.opts
	atStart := st.LineBeginning

	if atStart {
		blank := b == '\n'
		if o.SqueezeBlank && blank && st.PrevLineBlank {
			return nil
		}
		if o.NumberNonblank {
			if !blank {
				if err := t.fmt.writeLineNumber(st); err != nil {
					return err
				}
			}
		} else if o.Number {
			if err := t.fmt.writeLineNumber(st); err != nil {
				return err
			}
		}
		st.LineBeginning = false
	}

	switch {
	case b == '\n':
		if o.ShowEnds {
			if err := t.fmt.writeStyledBytes(t.fmt.pal.End, endMarker); err != nil {
				return err
			}
		}
		if err := t.fmt.writeByte('\n'); err != nil {
			return err
		}
		st.LineBeginning = true
		st.PrevLineBlank = atStart
		return nil
	case b == '\t' && o.ShowTabs:
		st.PrevLineBlank = false
		return t.fmt.writeStyledBytes(t.fmt.pal.Tab, tabMarker)
	default:
		st.PrevLineBlank = false
		return t.fmt.writeVisible(b, o.ShowNonprinting)
	}
}

type formatter struct {
	w       io.Writer
	bw      io.ByteWriter
	sw      io.StringWriter
	pal     ansi.Palette
	byteBuf [1]byte
	numBuf  [24]byte
	visBuf  [4]byte
}

func (f *formatter) reset(w io.Writer, pal ansi.Palette) {
	f.w = w
	f.pal = pal
	if w == nil {
		f.bw = nil
		f.sw = nil
		return
	}
	if bw, ok := w.(io.ByteWriter); ok {
		f.bw = bw
	} else {
		f.bw = nil
	}
	if sw, ok := w.(io.StringWriter); ok {
		f.sw = sw
	} else {
		f.sw = nil
	}
}

func (f *formatter) clear() {
	f.w = nil
	f.bw = nil
	f.sw = nil
	f.pal = ansi.Palette{}
}

func (f *formatter) writeANSI(seq string) error {
	if seq == "" {
		return nil
	}
	var err error
	if f.sw != nil {
		_, err = f.sw.WriteString(seq)
	} else {
		_, err = io.WriteString(f.w, seq)
	}
	return err
}

func (f *formatter) writeBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	n, err := f.w.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}

func (f *formatter) writeByte(b byte) error {
	if f.bw != nil {
		return f.bw.WriteByte(b)
	}
	f.byteBuf[0] = b
	return f.writeBytes(f.byteBuf[:])
}

func (f *formatter) writeStyledBytes(style string, b []byte) error {
	if err := f.writeANSI(style); err != nil {
		return err
	}
	if err := f.writeBytes(b); err != nil {
		return err
	}
	if style != "" {
		return f.writeANSI(ansi.Reset)
	}
	return nil
}

// writeLineNumber writes st.LineNumber right-aligned in a six column field
// followed by a TAB, then advances the counter.
func (f *formatter) writeLineNumber(st *State) error {
	buf := appendLineNumber(f.numBuf[:0], st.LineNumber)
	st.LineNumber++
	if err := f.writeStyledBytes(f.pal.Number, buf); err != nil {
		return err
	}
	return f.writeByte('\t')
}

func (f *formatter) writeVisible(b byte, showNonprinting bool) error {
	if !showNonprinting || !needsEscape(b) {
		return f.writeByte(b)
	}
	style := f.pal.Control
	if b >= 0x80 {
		style = f.pal.Meta
	}
	return f.writeStyledBytes(style, AppendVisible(f.visBuf[:0], b, true))
}

// appendLineNumber appends n in decimal, padded with leading spaces to
// lineNumberWidth. Wider numbers are appended in full.
func appendLineNumber(dst []byte, n uint64) []byte {
	var digits [20]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	for pad := lineNumberWidth - (len(digits) - i); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	return append(dst, digits[i:]...)
}

type scanner struct {
	r   io.Reader
	buf [4096]byte
	pos int
	n   int
	err error
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
	s.err = nil
}

// fill refills buf. Data returned together with an error is kept and the
// error is reported on the following fill.
func (s *scanner) fill() error {
	if s.err != nil {
		return s.err
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[:])
		if n > 0 {
			s.pos = 0
			s.n = n
			s.err = err
			return nil
		}
		if err != nil {
			s.err = err
			return err
		}
	}
	s.err = io.ErrNoProgress
	return s.err
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}
