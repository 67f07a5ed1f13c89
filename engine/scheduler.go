package engine

import (
	"time"
)

// Task is a handle on a repeating tick source
// Stop is idempotent; after Stop returns the task callback never runs again
type Task interface {
	Stop()
}

// Scheduler starts repeating tasks
// Callbacks always run on the goroutine that owns the game
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// ManualScheduler fires tasks from explicit Advance calls
// Used by tests and by frame-driven front-ends that own their own clock
type ManualScheduler struct {
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTask) Stop() {
	t.stopped = true
}

// NewManualScheduler creates a scheduler at time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every schedules fn every interval starting one interval from now
// Non-positive intervals are clamped to one millisecond
func (s *ManualScheduler) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &manualTask{
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves time forward by d, running every due task in deadline order
// Tasks started or stopped from within a callback take effect immediately
// Returns the number of callbacks run
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0

	for {
		var due *manualTask
		for _, t := range s.tasks {
			if t.stopped || t.next > target {
				continue
			}
			if due == nil || t.next < due.next {
				due = t
			}
		}
		if due == nil {
			break
		}

		s.now = due.next
		due.next += due.interval
		due.fn()
		fired++
	}

	s.now = target
	s.prune()
	return fired
}

// Now returns the scheduler's elapsed time
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// ActiveIntervals returns the intervals of tasks that have not been stopped
func (s *ManualScheduler) ActiveIntervals() []time.Duration {
	var out []time.Duration
	for _, t := range s.tasks {
		if !t.stopped {
			out = append(out, t.interval)
		}
	}
	return out
}

func (s *ManualScheduler) prune() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
