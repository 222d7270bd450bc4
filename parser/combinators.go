package parser

// Commit wraps a parser so that, on success, its result carries Commit =
// true. The flag poisons backtracking inside enclosing Chain/Seq (a failure
// following a committed success is re-raised as an abort) and causes Alt to
// stop exploring remaining alternatives when that abort surfaces.
//
// ref is resolved inside the returned parser's execute function, not here:
// resolving eagerly would force a Lazy ref before the grammar that defines
// it has finished being built, breaking self- and mutually-recursive
// grammars.
func Commit(ref ParserRef) Parser {
	message := func() string { return ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state, func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			m.Commit = true
			k(m)
		})
	})
}

// Optional makes a parser succeed unconditionally: on success of p, forward
// its result; on failure, if Abort is set, forward that failure unchanged,
// otherwise succeed with the supplied default (or "" with none given) at the
// input state, preserving the failure's Commit flag.
func Optional(ref ParserRef, defaultValue ...any) Parser {
	var def any = ""
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}
	message := func() string { return "optional " + ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state, func(m MatchResult) {
			if !m.IsFailure {
				k(m)
				return
			}
			if m.Abort {
				k(m)
				return
			}
			k(Succeed(state, def, m.Commit))
		})
	})
}

// Check tries p without consuming input: on success, it succeeds with p's
// value but at the input state (zero-width lookahead). Failure is forwarded
// unchanged.
func Check(ref ParserRef) Parser {
	message := func() string { return "check " + ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state.Descend(), func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			k(Succeed(state, m.Value, m.Commit))
		})
	})
}

// Not succeeds (with value "", at the input state) exactly when p fails, and
// fails (with this parser's own message, at the input state) exactly when p
// succeeds.
func Not(ref ParserRef) Parser {
	message := func() string { return "not " + ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state.Descend(), func(m MatchResult) {
			if m.IsFailure {
				k(Succeed(state, "", m.Commit))
				return
			}
			k(Fail(state, message, false, false))
		})
	})
}

// Drop derives a parser that discards p's value, for use inline in Seq
// argument lists without an explicit .Drop() method call.
func Drop(ref ParserRef) Parser {
	message := func() string { return ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state, func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			k(Succeed(m.State, dropped{}, m.Commit))
		})
	})
}

// Chain runs p1, then on success runs p2 from the resulting state, combining
// both values with combiner. If p1's success was committed and p2
// subsequently fails, the failure is re-raised with Abort forced true so
// that an enclosing Alt stops trying other branches.
func Chain(p1, p2 ParserRef, combiner func(a, b any) (any, error)) Parser {
	message := func() string { return p1.resolve().Message() + " then " + p2.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		p1.resolve().Parse(state, func(m1 MatchResult) {
			if m1.IsFailure {
				k(m1)
				return
			}
			p2.resolve().Parse(m1.State, func(m2 MatchResult) {
				if m2.IsFailure {
					if m1.Commit {
						k(m2.withAbort())
						return
					}
					k(m2)
					return
				}
				combined, err := combiner(m1.Value, m2.Value)
				if err != nil {
					msg := err.Error()
					k(Fail(m2.State, func() string { return msg }, m1.Commit || m2.Commit, false))
					return
				}
				k(Succeed(m2.State, combined, m1.Commit || m2.Commit))
			})
		})
	})
}

// appendNonDropped appends value to list unless it is the dropped marker.
func appendNonDropped(list []any, value any) []any {
	if _, ok := value.(dropped); ok {
		return list
	}
	return append(list, value)
}

// Seq folds its arguments left-to-right with Chain; the combiner accumulates
// a fresh ordered []any of non-dropped values. A single-parser Seq is
// equivalent to that parser, unwrapped (no list wrapping).
//
// None of ps is resolved here: Chain (and wrapFirst, for the first element)
// defer resolution into their own execute functions, so Seq never forces a
// Lazy ref before the grammar referring to it has finished being built.
func Seq(ps ...ParserRef) Parser {
	if len(ps) == 0 {
		return New(func() string { return "empty sequence" }, func(state ParserState, k Continuation) {
			k(Succeed(state, []any{}, false))
		})
	}
	if len(ps) == 1 {
		ref := ps[0]
		message := func() string { return ref.resolve().Message() }
		return New(message, func(state ParserState, k Continuation) {
			ref.resolve().Parse(state, k)
		})
	}

	result := Ref(wrapFirst(ps[0]))
	for _, next := range ps[1:] {
		nextRef := next
		prev := result
		result = Ref(Chain(prev, nextRef, func(a, b any) (any, error) {
			list, _ := a.([]any)
			return appendNonDropped(list, b), nil
		}))
	}
	return result.resolve()
}

// wrapFirst seeds Seq's accumulator: on success, ref's raw value becomes the
// first element of a fresh []any, so the Chain fold that follows has a
// uniform accumulator shape regardless of arity.
func wrapFirst(ref ParserRef) Parser {
	message := func() string { return ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		ref.resolve().Parse(state, func(m MatchResult) {
			if m.IsFailure {
				k(m)
				return
			}
			k(Succeed(m.State, appendNonDropped(nil, m.Value), m.Commit))
		})
	})
}

// SeqIgnore interleaves Optional(ignore).Drop() before each element of ps
// and folds the whole thing with Seq, for the common case of skipping
// whitespace (or any other separator) between meaningful tokens.
func SeqIgnore(ignore ParserRef, ps ...ParserRef) Parser {
	interleaved := make([]ParserRef, 0, len(ps)*2)
	for _, p := range ps {
		interleaved = append(interleaved, Ref(Optional(ignore).Drop()), p)
	}
	return Seq(interleaved...)
}
