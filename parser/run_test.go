package parser

import "testing"

func TestRunCollectsDistinctSuccesses(t *testing.T) {
	p := Alt(Ref(literal("foo")), Ref(literal("foo").OnMatch(func(v any) (any, error) { return v, nil })))
	result, err := Run(Ref(p), "foo", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(result.Results.Values()), 1; got != want {
		t.Errorf("identical parses should be de-duplicated: got %d distinct results, want %d", got, want)
	}
}

func TestRunReportsFurthestFailureOnNoParse(t *testing.T) {
	p := Seq(Ref(literal("foo")), Ref(literal("bar")))
	result, err := Run(Ref(p), "foobaz", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Results.IsSettled() {
		t.Fatalf("expected no successful parse")
	}
	if !result.HasFail {
		t.Fatalf("expected a recorded failure")
	}
	if got, want := result.Furthest.FailState.Pos(), 3; got != want {
		t.Errorf("got furthest failure pos %d, want %d", got, want)
	}
}

func TestRunReturnsGrammarErrorFromZeroWidthRepeat(t *testing.T) {
	zeroWidth := New(func() string { return "zero-width" }, func(state ParserState, k Continuation) {
		k(Succeed(state, "x", false))
	})
	p := Repeat(Ref(zeroWidth), 0, 0)

	_, err := Run(Ref(p), "abc", nil, nil)
	if err == nil {
		t.Fatalf("expected a GrammarError")
	}
}

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Debugf(format string, args ...any) {
	s.messages = append(s.messages, format)
}

func TestRunSendsJobTraceToDebugSink(t *testing.T) {
	sink := &recordingSink{}
	p := Alt(Ref(literal("foo")), Ref(literal("bar")))
	_, err := Run(Ref(p), "bar", nil, sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.messages) == 0 {
		t.Errorf("expected the debug sink to receive at least one job trace message")
	}
}
