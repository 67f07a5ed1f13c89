package engine

import (
	"testing"
	"time"
)

// TestManualSchedulerFiresOnBoundaries verifies ticks fire exactly at each interval
func TestManualSchedulerFiresOnBoundaries(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	s.Every(100*time.Millisecond, func() { count++ })

	if fired := s.Advance(99 * time.Millisecond); fired != 0 {
		t.Errorf("Expected 0 ticks before the first boundary, got %d", fired)
	}
	if fired := s.Advance(1 * time.Millisecond); fired != 1 {
		t.Errorf("Expected 1 tick at the boundary, got %d", fired)
	}
	if fired := s.Advance(350 * time.Millisecond); fired != 3 {
		t.Errorf("Expected 3 ticks over 350ms, got %d", fired)
	}
	if count != 4 {
		t.Errorf("Expected 4 callbacks, got %d", count)
	}
	if s.Now() != 450*time.Millisecond {
		t.Errorf("Expected now 450ms, got %v", s.Now())
	}
}

// TestManualSchedulerStop verifies stopped tasks never fire again
func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	task := s.Every(10*time.Millisecond, func() { count++ })

	s.Advance(25 * time.Millisecond)
	task.Stop()
	task.Stop()
	s.Advance(100 * time.Millisecond)

	if count != 2 {
		t.Errorf("Expected 2 callbacks before stop, got %d", count)
	}
	if n := len(s.ActiveIntervals()); n != 0 {
		t.Errorf("Expected no active tasks, got %d", n)
	}
}

// TestManualSchedulerStopFromCallback verifies a callback can replace its own task
func TestManualSchedulerStopFromCallback(t *testing.T) {
	s := NewManualScheduler()
	var slow, fast int
	var task Task

	task = s.Every(100*time.Millisecond, func() {
		slow++
		task.Stop()
		task = s.Every(10*time.Millisecond, func() { fast++ })
	})

	s.Advance(150 * time.Millisecond)

	if slow != 1 {
		t.Errorf("Expected slow task to fire once, got %d", slow)
	}
	if fast != 5 {
		t.Errorf("Expected fast task to fire 5 times after the swap, got %d", fast)
	}
	if got := s.ActiveIntervals(); len(got) != 1 || got[0] != 10*time.Millisecond {
		t.Errorf("Expected a single 10ms task, got %v", got)
	}
}

// TestManualSchedulerOrdering verifies tasks run in deadline order
func TestManualSchedulerOrdering(t *testing.T) {
	s := NewManualScheduler()
	var order []string
	s.Every(30*time.Millisecond, func() { order = append(order, "a") })
	s.Every(20*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(60 * time.Millisecond)

	// Ties run in start order
	want := []string{"b", "a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
}

// TestManualSchedulerClampsInterval verifies non-positive intervals still advance
func TestManualSchedulerClampsInterval(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	s.Every(0, func() { count++ })

	s.Advance(5 * time.Millisecond)
	if count != 5 {
		t.Errorf("Expected 5 ticks at the 1ms floor, got %d", count)
	}
}
