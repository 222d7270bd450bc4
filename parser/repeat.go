package parser

// Repeat matches p between minCount and maxCount times (maxCount <= 0 means
// unbounded). It emits a Success when the count reaches maxCount, and each
// time p reports a failure after at least minCount matches (with the list
// and state as of the last match). It does not emit a separate Success for
// every count in between: Repeat(p, 2, 4) over five matches of p emits only
// the four-element list.
//
// Each iteration is scheduled as its own job (never a direct recursive call)
// so that long repetitions do not grow the call stack. A sub-parser success
// that does not advance pos is a grammar bug, not a runtime condition: it is
// reported as a fatal GrammarError that aborts the whole run.
func Repeat(ref ParserRef, minCount, maxCount int) Parser {
	message := func() string { return "repeat " + ref.resolve().Message() }
	return New(message, func(state ParserState, k Continuation) {
		repeatStep(ref.resolve(), message, state, state, nil, 0, minCount, maxCount, k)
	})
}

func repeatStep(
	p Parser,
	message func() string,
	original ParserState,
	current ParserState,
	acc []any,
	count int,
	minCount, maxCount int,
	k Continuation,
) {
	sched := current.Scheduler()
	p.Parse(current, func(m MatchResult) {
		if m.IsFailure {
			if count >= minCount {
				k(Succeed(current, acc, m.Commit))
				return
			}
			k(Fail(original, message, m.Commit, m.Abort))
			return
		}
		if m.State.Pos() == current.Pos() {
			sched.Abort(&GrammarError{
				Message: message() + ": zero-width repetition",
				Pos:     m.State.Pos(),
			})
			return
		}
		next := appendNonDropped(acc, m.Value)
		count++
		if maxCount > 0 && count == maxCount {
			k(Succeed(m.State, next, m.Commit))
			return
		}
		nextState := m.State
		nextCommit := m.Commit
		sched.AddJob(func() string { return message() + " iteration" }, func() {
			repeatStep(p, message, original, nextState, next, count, minCount, maxCount, func(r MatchResult) {
				if !r.IsFailure {
					r.Commit = r.Commit || nextCommit
				}
				k(r)
			})
		})
	})
}

// RepeatIgnore is Repeat with an ignored separator (typically whitespace)
// consumed, and discarded, before each iteration of p.
func RepeatIgnore(ignore, p ParserRef, min, max int) Parser {
	skipThenMatch := Seq(Ref(Optional(ignore).Drop()), p).OnMatch(func(v any) (any, error) {
		list := v.([]any)
		return list[0], nil
	})
	return Repeat(Ref(skipThenMatch), min, max)
}

// RepeatSeparated matches p (separator p){min-1,max-1}; the separator value
// is discarded, and the result is the list of p's values in order. min <= 0
// is coerced to 1: "zero-or-more-with-separators" has no sensible reading
// distinct from Optional(RepeatSeparated(...), []any{}).
func RepeatSeparated(p, separator ParserRef, min, max int) Parser {
	if min <= 0 {
		min = 1
	}
	return Reduce(p, separator, nil, nil, min, max)
}

// Reduce is like RepeatSeparated, but the separator value is retained and
// passed to reducer, which folds (sum, separator, element) -> sum. A nil
// accumulator/reducer pair defaults to building a []any of p's values, i.e.
// RepeatSeparated's behavior.
//
// p and separator are not resolved here. rest is built via Chain, which
// defers resolving both refs into its own execute function; p itself is
// only resolved inside the returned parser's execute function, once Parse is
// actually invoked.
func Reduce(p, separator ParserRef, accumulator func(any) any, reducer func(sum, sep, elem any) any, min, max int) Parser {
	if min <= 0 {
		min = 1
	}
	if accumulator == nil {
		accumulator = func(x any) any { return []any{x} }
	}
	if reducer == nil {
		reducer = func(sum, _, elem any) any { return append(sum.([]any), elem) }
	}
	message := func() string { return "reduce " + p.resolve().Message() }

	rest := Chain(separator, p, func(sep, elem any) (any, error) {
		return pairValue{sep: sep, elem: elem}, nil
	})

	return New(message, func(state ParserState, k Continuation) {
		p.resolve().Parse(state, func(first MatchResult) {
			if first.IsFailure {
				k(first)
				return
			}
			sum := accumulator(first.Value)
			reduceStep(rest, reducer, message, state, first.State, sum, 1, first.Commit, min, max, k)
		})
	})
}

type pairValue struct {
	sep  any
	elem any
}

func reduceStep(
	rest Parser,
	reducer func(sum, sep, elem any) any,
	message func() string,
	original ParserState,
	current ParserState,
	sum any,
	count int,
	commit bool,
	min, max int,
	k Continuation,
) {
	sched := current.Scheduler()
	rest.Parse(current, func(m MatchResult) {
		if m.IsFailure {
			if count >= min {
				k(Succeed(current, sum, commit || m.Commit))
				return
			}
			k(Fail(original, message, commit || m.Commit, m.Abort))
			return
		}
		if m.State.Pos() == current.Pos() {
			sched.Abort(&GrammarError{
				Message: message() + ": zero-width repetition",
				Pos:     m.State.Pos(),
			})
			return
		}
		pv := m.Value.(pairValue)
		nextSum := reducer(sum, pv.sep, pv.elem)
		count++
		nextCommit := commit || m.Commit
		if max > 0 && count == max {
			k(Succeed(m.State, nextSum, nextCommit))
			return
		}
		nextState := m.State
		sched.AddJob(func() string { return message() + " iteration" }, func() {
			reduceStep(rest, reducer, message, original, nextState, nextSum, count, nextCommit, min, max, k)
		})
	})
}
