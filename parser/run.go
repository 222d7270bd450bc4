package parser

// RunResult bundles the ResultSet a Run produced with the furthest-reaching
// failure the scheduler observed, so a caller that gets an empty result set
// back still has something to report without needing to thread the
// scheduler through themselves.
type RunResult struct {
	Results  *ResultSet
	Furthest MatchResult
	HasFail  bool
}

// Run begins a parse: it constructs the initial ParserState and root
// ResultSet, pumps the scheduler's job queue until exhausted, and
// de-duplicates and appends each completed top-level success to the result
// set as it arrives. equal customizes de-duplication (nil defaults to
// reflect.DeepEqual); debug, if non-nil, receives the run's diagnostic
// trace.
//
// Run returns a non-nil error only for a fatal grammar error (see
// GrammarError); an empty, fully-drained result set with a nil error is a
// normal "no parse found" outcome — consult RunResult.Furthest for
// diagnostics in that case.
func Run(ref ParserRef, data string, equal EqualFunc, debug Sink) (RunResult, error) {
	sched := NewScheduler(debug)
	initial := newInitialState(data, sched, debug)
	results := NewResultSet(equal)

	p := ref.resolve()
	p.Parse(initial, func(m MatchResult) {
		if m.IsFailure {
			sched.RecordFailure(m)
			return
		}
		_ = results.Add(m.Value)
	})
	sched.Run()

	furthest, hasFail := sched.Furthest()
	return RunResult{Results: results, Furthest: furthest, HasFail: hasFail}, sched.Err()
}
