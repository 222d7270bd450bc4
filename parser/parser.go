// Package parser provides the evaluation engine for a parser combinator
// library: an immutable parser-state representation, a continuation-passing
// execution scheduler, the repetition/alternation algebra with commit and
// abort semantics, and an incremental result set that reports every distinct
// successful top-level parse as it is found.
//
// The package design is loosely inspired by the parser package for the Elm
// language (see https://package.elm-lang.org/packages/elm/parser/latest/Parser),
// generalized from a single-result direct-return shape into a multi-result,
// continuation-passing one so that ambiguous grammars can be enumerated
// rather than collapsed to a single parse tree. Primitive parser factories
// (string/regex literal matches) live in the sibling primitive package; this
// package only specifies the contract they must fulfil (see Run).
package parser

// Parser is the opaque unit that, given a state and a continuation,
// eventually delivers one or more match results to that continuation.
//
// Parser is implemented as a struct wrapping a function, but that's a detail
// package users need not concern themselves with: parsers are created by
// calls to creation, combination, and transformation functions in this
// package and in primitive.
type Parser struct {
	// message is the lazy self-description used in synthesized failures.
	// Lazy so that recursive grammars can be self-referential without
	// eagerly stringifying a cycle at construction time.
	message func() string
	execute func(state ParserState, k Continuation)
}

// New builds a Parser from an execute function and an optional message
// thunk. Exported so the primitive package (and other collaborators outside
// this package) can construct leaf parsers without a public struct literal.
func New(message func() string, execute func(state ParserState, k Continuation)) Parser {
	if message == nil {
		message = func() string { return "<parser>" }
	}
	return Parser{message: message, execute: execute}
}

// Message returns this parser's human-readable self-description.
func (p Parser) Message() string {
	return p.message()
}

// Parse invokes the parser, delivering results to continuation k. k may be
// invoked zero, one, or multiple times across the run.
func (p Parser) Parse(state ParserState, k Continuation) {
	p.execute(state, k)
}

// OnMatch derives a new parser that applies fn to every success value. If fn
// returns an error, the derived parser fails with that error at the state
// the original parser succeeded at.
func (p Parser) OnMatch(fn func(any) (any, error)) Parser {
	return New(p.message, func(state ParserState, k Continuation) {
		p.execute(state, func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			mapped, err := fn(m.Value)
			if err != nil {
				msg := err.Error()
				k(Fail(m.State, func() string { return msg }, m.Commit, false))
				return
			}
			k(Succeed(m.State, mapped, m.Commit))
		})
	})
}

// OnFail derives a new parser that replaces the failure message thunk.
func (p Parser) OnFail(message func() string) Parser {
	return New(message, func(state ParserState, k Continuation) {
		p.execute(state, func(m MatchResult) {
			if m.IsFailure {
				k(Fail(state, message, m.Commit, m.Abort))
				return
			}
			k(m)
		})
	})
}

// MatchIf derives a new parser that fails when predicate(value) is false.
func (p Parser) MatchIf(predicate func(any) bool) Parser {
	return New(p.message, func(state ParserState, k Continuation) {
		p.execute(state, func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			if !predicate(m.Value) {
				k(Fail(state, p.message, m.Commit, false))
				return
			}
			k(m)
		})
	})
}

// Drop derives a new parser whose success value is replaced with the
// internal "discard me" marker. Seq elides dropped values from the ordered
// value list it accumulates.
func (p Parser) Drop() Parser {
	return p.OnMatch(func(any) (any, error) { return dropped{}, nil })
}

// ParserRef is anywhere a combinator accepts a sub-parser: either a concrete
// Parser, or a Lazy deferred reference that resolves to a Parser the first
// time it is invoked. Resolution happens inside Parse, never at
// combinator-construction time, so mutually recursive grammars compose
// without infinite loops or nil dereferences while still being built.
type ParserRef interface {
	resolve() Parser
}

// direct wraps a concrete Parser as a ParserRef.
type direct struct{ p Parser }

func (d direct) resolve() Parser { return d.p }

// Ref lifts a concrete Parser into a ParserRef, for use anywhere a
// combinator's signature requires one.
func Ref(p Parser) ParserRef { return direct{p: p} }

// lazyRef is a deferred reference: thunk is called at most once, the first
// time resolve is called, and the resulting Parser is memoized.
type lazyRef struct {
	thunk    func() Parser
	resolved *Parser
}

func (l *lazyRef) resolve() Parser {
	if l.resolved == nil {
		p := l.thunk()
		l.resolved = &p
	}
	return *l.resolved
}

// Lazy builds a ParserRef that resolves thunk on first use and memoizes the
// result, breaking recursive-grammar build cycles: a grammar rule can refer
// to itself (or to a rule defined later) via Lazy without the reference
// being dereferenced before the whole grammar has been constructed.
func Lazy(thunk func() Parser) ParserRef {
	return &lazyRef{thunk: thunk}
}

// resolveAll resolves a slice of ParserRef to concrete Parsers.
func resolveAll(refs []ParserRef) []Parser {
	out := make([]Parser, len(refs))
	for i, r := range refs {
		out[i] = r.resolve()
	}
	return out
}
