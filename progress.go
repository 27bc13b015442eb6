package siman

import (
	"fmt"
	"io"
)

// WriterSink adapts an io.Writer to ProgressSink.
type WriterSink struct {
	W io.Writer
}

// Printf writes a formatted line to the underlying writer. Write errors are
// swallowed: diagnostic output is observational, not contractual, and a
// write failure on a progress stream must never abort an anneal.
func (s WriterSink) Printf(format string, args ...any) {
	fmt.Fprintf(s.W, format, args...)
}

// discardSink is used when a caller passes a nil ProgressSink to NewAnnealer
// or NewLocalOpt.
type discardSink struct{}

func (discardSink) Printf(string, ...any) {}
