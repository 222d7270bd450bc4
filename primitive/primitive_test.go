package primitive

import (
	"testing"

	"github.com/nscarcella/packrattle/parser"
)

// runOnce runs p against input to completion via parser.Run and returns
// either its first successful value (wrapped as a Success) or the furthest
// failure observed, whichever the run produced.
func runOnce(t *testing.T, p parser.Parser, input string) parser.MatchResult {
	t.Helper()
	result, err := parser.Run(parser.Ref(p), input, nil, nil)
	if err != nil {
		t.Fatalf("unexpected scheduler error: %v", err)
	}
	if result.Results.IsSettled() {
		return parser.Succeed(parser.ParserState{}, result.Results.Values()[0], false)
	}
	return result.Furthest
}

func TestStringMatchesPrefix(t *testing.T) {
	m := runOnce(t, String("hello"), "hello world")
	if m.IsFailure {
		t.Fatalf("expected success, got failure")
	}
	if got, want := m.Value.(string), "hello"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringFailsOnMismatch(t *testing.T) {
	m := runOnce(t, String("hello"), "goodbye")
	if !m.IsFailure {
		t.Errorf("expected failure")
	}
}

func TestRegexMatchesLongestAnchoredMatch(t *testing.T) {
	m := runOnce(t, Regex(`[0-9]+`), "123abc")
	if m.IsFailure {
		t.Fatalf("expected success, got failure")
	}
	if got, want := m.Value.(string), "123"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegexIsAnchoredAtPosition(t *testing.T) {
	m := runOnce(t, Regex(`[0-9]+`), "abc123")
	if !m.IsFailure {
		t.Errorf("Regex must not match later in the string; it is anchored at the current position")
	}
}

func TestFuncDelegatesToUserCallback(t *testing.T) {
	p := Func(func() string { return "always ok" }, func(state parser.ParserState) parser.MatchResult {
		return parser.Succeed(state.Advance(1), "consumed one", false)
	})
	m := runOnce(t, p, "xyz")
	if m.IsFailure {
		t.Fatalf("expected success")
	}
	if got, want := m.Value.(string), "consumed one"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRuneMatchesSingleConditionalRune(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	m := runOnce(t, Rune("digit", isDigit), "9abc")
	if m.IsFailure {
		t.Fatalf("expected success")
	}
	if got, want := m.Value.(string), "9"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	m2 := runOnce(t, Rune("digit", isDigit), "abc")
	if !m2.IsFailure {
		t.Errorf("expected failure on non-digit")
	}
}

func TestRuneWhileAlwaysSucceedsEvenConsumingNothing(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	m := runOnce(t, RuneWhile("digits", isDigit), "abc")
	if m.IsFailure {
		t.Fatalf("RuneWhile should always succeed")
	}
	if got, want := m.Value.(string), ""; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRuneWhileConsumesRunOfMatchingRunes(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	m := runOnce(t, RuneWhile("digits", isDigit), "123abc")
	if m.IsFailure {
		t.Fatalf("expected success")
	}
	if got, want := m.Value.(string), "123"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRuneSomeRequiresAtLeastOne(t *testing.T) {
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	m := runOnce(t, RuneSome("digits", isDigit), "abc")
	if !m.IsFailure {
		t.Errorf("RuneSome should fail when zero runes match")
	}
}

func TestRuneHandlesMultibyteRunes(t *testing.T) {
	isLetter := func(r rune) bool { return r != ' ' }
	m := runOnce(t, Rune("non-space", isLetter), "héllo")
	if m.IsFailure {
		t.Fatalf("expected success")
	}
	if got, want := m.Value.(string), "h"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	m2 := runOnce(t, RuneWhile("non-space", isLetter), "héllo world")
	if got, want := m2.Value.(string), "héllo"; got != want {
		t.Errorf("got %q, want %q (RuneWhile must decode multi-byte runes correctly)", got, want)
	}
}
