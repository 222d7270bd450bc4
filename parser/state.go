package parser

// input is the shared, immutable buffer a run parses against. Keeping it as
// its own small type (rather than a bare string on ParserState) makes the
// "never mutated, safely aliased" invariant explicit and gives derived
// states a cheap reference instead of a copy.
type input struct {
	data string
}

func (in *input) length() int {
	return len(in.data)
}

// Sink is the logger-agnostic interface the debug plumbing writes opaque
// diagnostic strings through. A nil Sink is a no-op, not an error.
type Sink interface {
	Debugf(format string, args ...any)
}

// ParserState is an immutable cursor over the input buffer, together with
// the diagnostic plumbing (a debug sink) and a handle to the run's job
// queue.
//
// States are values: every advancing combinator produces a new ParserState
// rather than mutating the one it was given.
type ParserState struct {
	in        *input
	pos       int
	endPos    int
	depth     int
	scheduler *Scheduler
	debug     Sink
}

// newInitialState builds the state a Run begins with: pos 0, endPos at the
// end of the buffer, depth 0.
func newInitialState(data string, scheduler *Scheduler, debug Sink) ParserState {
	in := &input{data: data}
	return ParserState{
		in:        in,
		pos:       0,
		endPos:    in.length(),
		depth:     0,
		scheduler: scheduler,
		debug:     debug,
	}
}

// Pos returns the current offset.
func (s ParserState) Pos() int { return s.pos }

// EndPos returns the exclusive upper bound for matching.
func (s ParserState) EndPos() int { return s.endPos }

// Depth returns the nesting counter used for debug indentation.
func (s ParserState) Depth() int { return s.depth }

// Scheduler returns the run's shared job queue.
func (s ParserState) Scheduler() *Scheduler { return s.scheduler }

// Remaining returns the unconsumed slice of input within EndPos.
func (s ParserState) Remaining() string {
	return s.in.data[s.pos:s.endPos]
}

// Length returns the total length of the underlying input buffer, ignoring
// any EndPos narrowing.
func (s ParserState) Length() int {
	return s.in.length()
}

// Advance returns a new state with pos moved forward by n bytes. Callers
// (primitives) are responsible for bounding their own matches to
// Remaining().
func (s ParserState) Advance(n int) ParserState {
	next := s
	next.pos = s.pos + n
	next.depth = s.depth + 1
	return next
}

// Descend returns a state with the same pos but an incremented depth, used
// by combinators that recurse into a sub-parser without consuming input
// themselves (e.g. Check, Not).
func (s ParserState) Descend() ParserState {
	next := s
	next.depth = s.depth + 1
	return next
}

// Narrow returns a state whose EndPos is clamped to pos+n, so that a
// sub-parser given it cannot read past that limit. No combinator in this
// package calls it.
func (s ParserState) Narrow(n int) ParserState {
	next := s
	limit := s.pos + n
	if limit < next.endPos {
		next.endPos = limit
	}
	return next
}

// Equal reports whether two states reference the same input and share pos
// and endPos, per the data model's equality invariant.
func (s ParserState) Equal(other ParserState) bool {
	return s.in == other.in && s.pos == other.pos && s.endPos == other.endPos
}

func (s ParserState) logf(format string, args ...any) {
	if s.debug == nil {
		return
	}
	s.debug.Debugf(format, args...)
}
