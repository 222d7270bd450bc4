package parser

// job is a zero-argument thunk with an attached debug label, queued by a
// combinator that wants to trade stack depth for queue depth.
type job struct {
	label func() string
	body  func()
}

// Scheduler owns the FIFO queue of pending jobs for a single Run, and tracks
// the furthest-reaching parse failure observed during that run so it can be
// reported as a diagnostic when the result set ends up empty.
//
// A Scheduler is single-threaded cooperative: Run pops one job at a time and
// executes it to completion; a job may enqueue more jobs. There is no
// parallelism and no preemption.
type Scheduler struct {
	queue    []job
	furthest MatchResult
	hasFail  bool
	err      error
	debug    Sink
}

// NewScheduler returns an empty Scheduler bound to a single run.
func NewScheduler(debug Sink) *Scheduler {
	return &Scheduler{debug: debug}
}

// AddJob enqueues a job. label is evaluated lazily, only when debug logging
// is enabled, so building a descriptive label never costs anything in the
// common case.
func (s *Scheduler) AddJob(label func() string, body func()) {
	s.queue = append(s.queue, job{label: label, body: body})
}

// Run drains the queue, popping jobs in FIFO order and executing each to
// completion, until the queue is empty or a fatal grammar error has been
// raised via Abort.
func (s *Scheduler) Run() {
	for len(s.queue) > 0 && s.err == nil {
		next := s.queue[0]
		s.queue = s.queue[1:]
		if s.debug != nil && next.label != nil {
			s.debug.Debugf("job: %s", next.label())
		}
		next.body()
	}
}

// RecordFailure tracks the furthest-reaching failure (max Pos) seen so far
// this run. Non-failures are ignored.
func (s *Scheduler) RecordFailure(m MatchResult) {
	if !m.IsFailure {
		return
	}
	if !s.hasFail || m.FailState.Pos() > s.furthest.FailState.Pos() {
		s.furthest = m
		s.hasFail = true
	}
}

// Furthest returns the furthest-reaching failure recorded so far, and
// whether any failure has been recorded at all.
func (s *Scheduler) Furthest() (MatchResult, bool) {
	return s.furthest, s.hasFail
}

// Abort records a fatal grammar error and stops Run from draining further
// jobs. Distinct from ordinary parse failure: Abort terminates the whole run,
// not just the current alternative.
func (s *Scheduler) Abort(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the fatal error passed to Abort, if any.
func (s *Scheduler) Err() error {
	return s.err
}
