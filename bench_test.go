package icat

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

var benchText = buildBenchText()

var benchSink int64

func warmPools() {
	t := acquireTransformer()
	releaseTransformer(t)
}

func buildBenchText() []byte {
	var b strings.Builder
	lines := []string{
		"The quick brown fox jumps over the lazy dog.",
		"",
		"",
		"\tindented with a tab",
		"control \x01\x02\x1b[0m bytes",
		"high bytes \xc3\xa9\xe2\x98\x83",
		"",
	}
	for b.Len() < 1<<20 {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}

func (w *countingWriter) WriteByte(_ byte) error {
	w.n++
	return nil
}

func benchmarkTransform(b *testing.B, opts *Options) {
	warmPools()
	reader := bytes.NewReader(benchText)
	b.SetBytes(int64(len(benchText)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(benchText)
		w := &countingWriter{}
		if err := Transform(w, reader, opts, NewState()); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
		benchSink = w.n
	}
}

func BenchmarkTransformPassthrough(b *testing.B) {
	benchmarkTransform(b, &Options{})
}

func BenchmarkTransformNumber(b *testing.B) {
	benchmarkTransform(b, &Options{Number: true})
}

func BenchmarkTransformShowAll(b *testing.B) {
	benchmarkTransform(b, &Options{ShowAll: true, NumberNonblank: true, SqueezeBlank: true})
}

func BenchmarkTransformColor(b *testing.B) {
	benchmarkTransform(b, &Options{ShowAll: true, Number: true, Palette: "default"})
}

func BenchmarkTransformNoByteWriter(b *testing.B) {
	warmPools()
	reader := bytes.NewReader(benchText)
	w := struct{ io.Writer }{io.Discard}
	opts := &Options{Number: true}
	b.SetBytes(int64(len(benchText)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(benchText)
		if err := Transform(w, reader, opts, NewState()); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}
