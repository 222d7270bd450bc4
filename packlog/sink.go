// Package packlog adapts the parser engine's logger-agnostic debug Sink to a
// real structured logger, so that the engine's scheduler trace (job
// dispatch, Alt branch entry, Repeat iteration) can be wired into a caller's
// own logging pipeline instead of going to an opaque channel.
package packlog

import (
	"github.com/rs/zerolog"

	"github.com/nscarcella/packrattle/parser"
)

// ZerologSink adapts a zerolog.Logger to parser.Sink. Every call to Debugf
// becomes one zerolog debug-level event.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink wraps logger as a parser.Sink.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Debugf implements parser.Sink.
func (s *ZerologSink) Debugf(format string, args ...any) {
	s.logger.Debug().Msgf(format, args...)
}

var _ parser.Sink = (*ZerologSink)(nil)

// NoopSink is a parser.Sink that discards every message. The engine itself
// treats a nil sink as a no-op; NoopSink is what the packrattle command
// passes when --debug is off, and is useful in tests that want to assert on
// parse results without asserting on the debug trace.
type NoopSink struct{}

// Debugf implements parser.Sink by doing nothing.
func (NoopSink) Debugf(string, ...any) {}

var _ parser.Sink = NoopSink{}
