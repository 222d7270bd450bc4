package parser

import "fmt"

// GrammarError is the fatal, non-recoverable error raised when a grammar's
// own construction is found to be broken at run time — currently, only
// zero-width repetition (a sub-parser of Repeat/Reduce succeeding without
// advancing pos). It is returned from Run as a genuine Go error, distinct
// from an ordinary empty result set, so callers can tell "the grammar parsed
// nothing" apart from "the grammar is broken" via errors.As.
type GrammarError struct {
	Message string
	Pos     int
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar error at %d: %s", e.Pos, e.Message)
}
