package parser

import "testing"

func TestSchedulerRunsJobsInFIFOOrder(t *testing.T) {
	sched := NewScheduler(nil)
	var order []int

	sched.AddJob(nil, func() { order = append(order, 1) })
	sched.AddJob(nil, func() {
		order = append(order, 2)
		// A job may enqueue more jobs; they run after everything already queued.
		sched.AddJob(nil, func() { order = append(order, 4) })
	})
	sched.AddJob(nil, func() { order = append(order, 3) })

	sched.Run()

	want := []int{1, 2, 3, 4}
	if len(order) != len(want) {
		t.Fatalf("got %d jobs run, want %d: %v", len(order), len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, order[i], want[i])
		}
	}
}

func TestSchedulerAbortStopsDraining(t *testing.T) {
	sched := NewScheduler(nil)
	ran := 0

	sched.AddJob(nil, func() {
		ran++
		sched.Abort(&GrammarError{Message: "boom", Pos: 3})
	})
	sched.AddJob(nil, func() { ran++ })

	sched.Run()

	if ran != 1 {
		t.Errorf("got %d jobs run after Abort, want 1", ran)
	}
	if sched.Err() == nil {
		t.Errorf("Err() should be non-nil after Abort")
	}

	// A second Abort must not replace the first error.
	sched.Abort(&GrammarError{Message: "later", Pos: 9})
	if err, ok := sched.Err().(*GrammarError); !ok || err.Message != "boom" {
		t.Errorf("Abort should keep the first error; got %v", sched.Err())
	}
}

func TestSchedulerRecordFailureTracksFurthest(t *testing.T) {
	sched := NewScheduler(nil)
	in := &input{data: "abcdefgh"}

	near := ParserState{in: in, pos: 1, endPos: in.length()}
	far := ParserState{in: in, pos: 5, endPos: in.length()}

	sched.RecordFailure(Fail(near, func() string { return "near" }, false, false))
	sched.RecordFailure(Fail(far, func() string { return "far" }, false, false))
	sched.RecordFailure(Fail(near, func() string { return "near again" }, false, false))

	furthest, has := sched.Furthest()
	if !has {
		t.Fatalf("expected a recorded failure")
	}
	if got, want := furthest.FailState.Pos(), 5; got != want {
		t.Errorf("got furthest pos %d, want %d", got, want)
	}

	// Success results must never be recorded as failures.
	sched.RecordFailure(Succeed(far, "ok", false))
	furthest, _ = sched.Furthest()
	if got, want := furthest.FailState.Pos(), 5; got != want {
		t.Errorf("a success leaked into furthest-failure tracking: got %d, want %d", got, want)
	}
}
