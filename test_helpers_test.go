package icat

import (
	"bytes"
	"errors"
	"io"
)

type noStringWriter struct {
	buf bytes.Buffer
}

func (w *noStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noStringWriter) String() string {
	return w.buf.String()
}

type byteWriter struct {
	buf bytes.Buffer
}

func (w *byteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *byteWriter) String() string {
	return w.buf.String()
}

type zeroReader struct {
	called bool
}

func (r *zeroReader) Read(_ []byte) (int, error) {
	if r.called {
		return 0, io.EOF
	}
	r.called = true
	return 0, nil
}

// stallReader never makes progress.
type stallReader struct{}

func (stallReader) Read(_ []byte) (int, error) {
	return 0, nil
}

var errRead = errors.New("read err")

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errRead
}

// partialReader returns data together with errRead on its first call.
type partialReader struct {
	data []byte
	done bool
}

func (r *partialReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errRead
	}
	r.done = true
	n := copy(p, r.data)
	return n, errRead
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type errByteWriter struct{}

func (errByteWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (errByteWriter) WriteByte(_ byte) error {
	return errors.New("write byte err")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

// failAfterWriter accepts limit bytes and rejects everything after.
type failAfterWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		return 0, errors.New("disk full")
	}
	return w.buf.Write(p)
}

type discardStringByteWriter struct{}

func (discardStringByteWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (discardStringByteWriter) WriteString(s string) (int, error) {
	return len(s), nil
}

func (discardStringByteWriter) WriteByte(_ byte) error {
	return nil
}
