package icat

import "io"

// AppendVisible appends the display form of b to dst. With showNonprinting
// unset, or for newline and TAB, b is appended as is. Otherwise control bytes
// use caret notation (0x01 is "^A", 0x7f is "^?") and bytes with the high bit
// set get an "M-" prefix followed by the rendering of their low seven bits
// (0x81 is "M-^A", 0xc8 is "M-H").
func AppendVisible(dst []byte, b byte, showNonprinting bool) []byte {
	if !showNonprinting || b == '\n' || b == '\t' {
		return append(dst, b)
	}
	if b >= 0x80 {
		dst = append(dst, 'M', '-')
		b -= 0x80
	}
	return appendLow7(dst, b)
}

// appendLow7 renders a seven-bit value in caret notation when it is a control
// character and literally otherwise.
func appendLow7(dst []byte, c byte) []byte {
	switch {
	case c < 0x20:
		return append(dst, '^', c+'@')
	case c == 0x7f:
		return append(dst, '^', '?')
	default:
		return append(dst, c)
	}
}

// needsEscape reports whether AppendVisible changes b.
func needsEscape(b byte) bool {
	if b == '\n' || b == '\t' {
		return false
	}
	return b < 0x20 || b >= 0x7f
}

// WriteVisible writes the display form of b to w using opts.ShowNonprinting
// (or ShowAll). A failed write is returned as a *WriteError.
func WriteVisible(w io.Writer, b byte, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	o := opts.Normalize()
	var buf [4]byte
	out := AppendVisible(buf[:0], b, o.ShowNonprinting)
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
