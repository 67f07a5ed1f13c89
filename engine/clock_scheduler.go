package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake/core"
)

// ClockScheduler runs real-time tick sources for an event loop
// Timer goroutines only signal due ticks on Due(); the loop calls Run on each
// signal so every callback executes on the loop goroutine
// Handles drift correction without busy-wait
type ClockScheduler struct {
	due chan *ClockTask

	mu     sync.Mutex
	tasks  map[*ClockTask]struct{}
	closed bool
}

// ClockTask is a repeating real-time tick source
type ClockTask struct {
	interval time.Duration
	fn       func()
	due      chan<- *ClockTask

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	stopped  atomic.Bool
	pending  atomic.Bool // A signal is queued and not yet run

	owner *ClockScheduler
	ticks atomic.Uint64
}

// NewClockScheduler creates a scheduler whose due channel holds up to buffer signals
func NewClockScheduler(buffer int) *ClockScheduler {
	if buffer < 1 {
		buffer = 1
	}
	return &ClockScheduler{
		due:   make(chan *ClockTask, buffer),
		tasks: make(map[*ClockTask]struct{}),
	}
}

// Due delivers ticks ready to run; receive and call Run on the loop goroutine
func (cs *ClockScheduler) Due() <-chan *ClockTask {
	return cs.due
}

// Every starts a real-time tick source
// Non-positive intervals are clamped to one millisecond
func (cs *ClockScheduler) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &ClockTask{
		interval: interval,
		fn:       fn,
		due:      cs.due,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
		owner:    cs,
	}

	cs.mu.Lock()
	if cs.closed {
		cs.mu.Unlock()
		t.stopped.Store(true)
		close(t.done)
		return t
	}
	cs.tasks[t] = struct{}{}
	cs.mu.Unlock()

	core.Go(t.loop)
	return t
}

// Close stops every task started by the scheduler; later Every calls return stopped tasks
func (cs *ClockScheduler) Close() {
	cs.mu.Lock()
	cs.closed = true
	tasks := make([]*ClockTask, 0, len(cs.tasks))
	for t := range cs.tasks {
		tasks = append(tasks, t)
	}
	cs.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}

// Active returns the number of running tasks
func (cs *ClockScheduler) Active() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.tasks)
}

// Stop halts the tick source and waits for its timer goroutine to exit
// Signals already queued on Due() become no-ops
func (t *ClockTask) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.stopChan)
		<-t.done

		t.owner.mu.Lock()
		delete(t.owner.tasks, t)
		t.owner.mu.Unlock()
	})
}

// Run executes the task callback unless the task was stopped after signalling
func (t *ClockTask) Run() {
	t.pending.Store(false)
	if t.stopped.Load() {
		return
	}
	t.ticks.Add(1)
	t.fn()
}

// Interval returns the configured tick interval
func (t *ClockTask) Interval() time.Duration {
	return t.interval
}

// Ticks returns the number of callbacks run
func (t *ClockTask) Ticks() uint64 {
	return t.ticks.Load()
}

// loop waits for each deadline and signals the owner loop
func (t *ClockTask) loop() {
	defer close(t.done)

	nextDeadline := time.Now().Add(t.interval)
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-timer.C:
		}

		// At most one queued signal per task; a slow loop skips ticks instead of bursting
		if t.pending.CompareAndSwap(false, true) {
			select {
			case t.due <- t:
			case <-t.stopChan:
				return
			}
		}

		now := time.Now()
		nextDeadline = nextDeadline.Add(t.interval)
		maxBehind := t.interval * 2
		if now.Sub(nextDeadline) > maxBehind {
			nextDeadline = now.Add(t.interval)
		}

		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
