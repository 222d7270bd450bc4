package parser

// Alt tries each alternative from the same starting state, scheduling each
// as a separate job so that a long chain of alternatives never grows the
// call stack. Alt is non-deterministic enumerating: it delivers every
// successful alternative to k, not just the first, so that an ambiguous
// grammar surfaces all of its parses. Commit within a branch does not prune
// other branches; only Abort does, via a flag shared across all of this
// Alt's jobs.
//
// ps is resolved lazily, one ref at a time, inside each scheduled job body
// (and, for diagnostics, inside message) rather than up front: resolving
// eagerly would force a Lazy ref before the grammar that defines it has
// finished being built, breaking self- and mutually-recursive grammars.
func Alt(ps ...ParserRef) Parser {
	message := func() string { return altMessage(resolveAll(ps)) }
	return New(message, func(state ParserState, k Continuation) {
		if len(ps) == 0 {
			k(Fail(state, message, false, false))
			return
		}
		aborting := new(bool)
		sched := state.Scheduler()
		for _, alt := range ps {
			alt := alt
			sched.AddJob(func() string { return "alt: " + alt.resolve().Message() }, func() {
				if *aborting {
					return
				}
				alt.resolve().Parse(state, func(m MatchResult) {
					if m.IsFailure && m.Abort {
						*aborting = true
					}
					k(m)
				})
			})
		}
	})
}

func altMessage(parsers []Parser) string {
	if len(parsers) == 0 {
		return "no alternatives"
	}
	msg := "one of: " + parsers[0].Message()
	for _, p := range parsers[1:] {
		msg += " | " + p.Message()
	}
	return msg
}
