package diag

import (
	"fmt"
	"io"
	"os"
)

// LogSink is a Sink that writes advisories as single lines.
type LogSink struct {
	// Out is the destination writer. Defaults to stderr when nil.
	Out io.Writer
	// Verbose includes the advisory kind and instance identity.
	Verbose bool
}

func (s *LogSink) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stderr
}

// Warn writes a warning-level advisory line.
func (s *LogSink) Warn(adv *Advisory) {
	s.write("warn", adv)
}

// Error writes an error-level advisory line.
func (s *LogSink) Error(adv *Advisory) {
	s.write("error", adv)
}

func (s *LogSink) write(level string, adv *Advisory) {
	if adv == nil {
		return
	}
	if s.Verbose {
		fmt.Fprintf(s.out(), "[lwc %s] %s <%s>", level, adv.Kind, adv.Component)
		if adv.Instance != "" {
			fmt.Fprintf(s.out(), " instance=%s", adv.Instance)
		}
		if adv.Property != "" {
			fmt.Fprintf(s.out(), " property=%s", adv.Property)
		}
		if adv.EventType != "" {
			fmt.Fprintf(s.out(), " event=%s", adv.EventType)
		}
		fmt.Fprintf(s.out(), ": %s\n", adv.Message)
	} else {
		fmt.Fprintf(s.out(), "[lwc %s] <%s>: %s\n", level, adv.Component, adv.Message)
	}
}

// CaptureSink is a Sink that records advisories in memory. It backs test
// assertions and the engine's runtime stats.
type CaptureSink struct {
	// Warnings holds warning-level advisories in arrival order.
	Warnings []*Advisory
	// Errors holds error-level advisories in arrival order.
	Errors []*Advisory
}

// Warn records a warning-level advisory.
func (s *CaptureSink) Warn(adv *Advisory) {
	s.Warnings = append(s.Warnings, adv)
}

// Error records an error-level advisory.
func (s *CaptureSink) Error(adv *Advisory) {
	s.Errors = append(s.Errors, adv)
}

// LastWarning returns the most recent warning, or nil.
func (s *CaptureSink) LastWarning() *Advisory {
	if len(s.Warnings) == 0 {
		return nil
	}
	return s.Warnings[len(s.Warnings)-1]
}
