package icat

import (
	"bytes"
	"testing"
)

const fuzzMaxInput = 1 << 20

var fuzzSeeds = [][]byte{
	[]byte(""),
	[]byte("a\nb\n"),
	[]byte("a\n\n\n\nb\n"),
	[]byte("\n\n\n"),
	[]byte("tab\there\r\n"),
	[]byte("\x00\x01\x1f\x7f\x80\x81\x9f\xa0\xff"),
	[]byte("no trailing newline"),
}

func FuzzTransformPassthrough(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput {
			return
		}
		var buf bytes.Buffer
		if err := Transform(&buf, bytes.NewReader(data), nil, NewState()); err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), data) {
			t.Fatalf("passthrough changed input\ninput:  %q\noutput: %q", data, buf.Bytes())
		}
	})
}

func FuzzTransformShowAll(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput {
			return
		}
		var buf bytes.Buffer
		if err := Transform(&buf, bytes.NewReader(data), &Options{ShowAll: true}, NewState()); err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		out := buf.Bytes()
		for _, b := range out {
			if b != '\n' && (b < 0x20 || b >= 0x7f) {
				t.Fatalf("output contains non-printable byte %#x: %q", b, out)
			}
		}
		if bytes.Count(out, []byte("$\n")) != bytes.Count(data, []byte("\n")) {
			t.Fatalf("every newline should be marked\ninput:  %q\noutput: %q", data, out)
		}
	})
}

func FuzzTransformSqueeze(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput {
			return
		}
		var buf bytes.Buffer
		if err := Transform(&buf, bytes.NewReader(data), &Options{SqueezeBlank: true}, NewState()); err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		out := buf.Bytes()
		if bytes.Contains(out, []byte("\n\n\n")) || bytes.HasPrefix(out, []byte("\n\n")) {
			t.Fatalf("output repeats blank lines\ninput:  %q\noutput: %q", data, out)
		}
		strip := func(b []byte) []byte { return bytes.ReplaceAll(b, []byte("\n"), nil) }
		if !bytes.Equal(strip(out), strip(data)) {
			t.Fatalf("squeezing dropped content\ninput:  %q\noutput: %q", data, out)
		}
	})
}

func FuzzTransformSplitSources(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed, uint(len(seed)/2))
	}

	f.Fuzz(func(t *testing.T, data []byte, cut uint) {
		if len(data) > fuzzMaxInput {
			return
		}
		at := int(cut % uint(len(data)+1))
		opts := &Options{ShowAll: true, Number: true, SqueezeBlank: true}

		var whole bytes.Buffer
		if err := Transform(&whole, bytes.NewReader(data), opts, NewState()); err != nil {
			t.Fatalf("Transform failed: %v", err)
		}

		var split bytes.Buffer
		st := NewState()
		for _, part := range [][]byte{data[:at], data[at:]} {
			if err := Transform(&split, bytes.NewReader(part), opts, st); err != nil {
				t.Fatalf("Transform failed: %v", err)
			}
		}
		if !bytes.Equal(whole.Bytes(), split.Bytes()) {
			t.Fatalf("splitting at %d changed output\nwhole: %q\nsplit: %q", at, whole.Bytes(), split.Bytes())
		}
	})
}
