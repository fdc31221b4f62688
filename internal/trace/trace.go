// Package trace provides the single output sink both CPU cores route their
// per-instruction debug trace through, so it is redirectable and
// silenceable without inline conditional prints scattered through Step.
package trace

import (
	"fmt"
	"io"
	"os"
)

// Sink is a guarded io.Writer: writes only happen while enabled, and the
// destination can be swapped out (tests redirect it to a buffer, a caller
// might redirect it to a log file).
type Sink struct {
	out     io.Writer
	enabled bool
}

// NewSink returns a Sink writing to os.Stdout, initially enabled to match
// the CPU's default debug-trace-on construction.
func NewSink() *Sink {
	return &Sink{out: os.Stdout, enabled: true}
}

// SetEnabled toggles whether Printf emits anything.
func (s *Sink) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether the sink currently emits output.
func (s *Sink) Enabled() bool {
	return s.enabled
}

// SetOutput redirects the sink's destination.
func (s *Sink) SetOutput(w io.Writer) {
	s.out = w
}

// Printf writes a formatted trace line followed by a newline, if the sink
// is enabled.
func (s *Sink) Printf(format string, args ...any) {
	if !s.enabled {
		return
	}
	fmt.Fprintf(s.out, format, args...)
	fmt.Fprintln(s.out)
}
