package codegen

import "io"

// stickyWriter wraps an io.Writer so that once a write fails, every
// subsequent Write is a silent no-op; the first error is retained and can
// be retrieved with Err. This lets Generator.Compile call WriteString
// freely without threading an error return through every helper.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) Err() error {
	return s.err
}
