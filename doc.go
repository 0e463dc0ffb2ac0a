// Package icat concatenates byte streams the way cat(1) does, with optional
// display transformations: line numbering, end-of-line markers, tab
// visualization, caret and meta notation for non-printable bytes, and
// squeezing of repeated blank lines.
//
// A run is one State threaded through one Transform call per input, so line
// numbers and blank-line squeezing carry across inputs:
//
//	st := icat.NewState()
//	opts := &icat.Options{Number: true}
//	for _, name := range names {
//		f, err := os.Open(name)
//		if err != nil {
//			log.Print(err)
//			continue
//		}
//		err = icat.Transform(os.Stdout, f, opts, st)
//		f.Close()
//		var werr *icat.WriteError
//		if errors.As(err, &werr) {
//			log.Fatal(err)
//		}
//	}
//
// Transform reports source failures as *ReadError and sink failures as
// *WriteError so callers can keep going after the former and stop on the
// latter.
//
// Rendering a single byte:
//
//	out := icat.AppendVisible(nil, 0x81, true) // "M-^A"
package icat
