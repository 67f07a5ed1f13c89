package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/snake/parameter"
)

func TestSpeedIntervals(t *testing.T) {
	tests := []struct {
		speed    Speed
		name     string
		interval time.Duration
	}{
		{SpeedSlow, "slow", 200 * time.Millisecond},
		{SpeedMedium, "medium", 150 * time.Millisecond},
		{SpeedFast, "fast", 100 * time.Millisecond},
		{SpeedExtreme, "extreme", 50 * time.Millisecond},
	}

	for _, tt := range tests {
		if tt.speed.String() != tt.name {
			t.Errorf("Expected name %q, got %q", tt.name, tt.speed.String())
		}
		if tt.speed.Interval() != tt.interval {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.interval, tt.speed.Interval())
		}
		parsed, err := ParseSpeed(tt.name)
		if err != nil || parsed != tt.speed {
			t.Errorf("ParseSpeed(%q): expected %s, got %s (%v)", tt.name, tt.speed, parsed, err)
		}
	}
}

func TestSpeedNextWraps(t *testing.T) {
	s := SpeedSlow
	seen := []Speed{s}
	for i := 0; i < 4; i++ {
		s = s.Next()
		seen = append(seen, s)
	}
	want := []Speed{SpeedSlow, SpeedMedium, SpeedFast, SpeedExtreme, SpeedSlow}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Expected cycle %v, got %v", want, seen)
			break
		}
	}
}

func TestParseSpeedRejectsUnknown(t *testing.T) {
	if _, err := ParseSpeed("ludicrous"); err == nil {
		t.Error("Expected error for unknown speed")
	}
	if s, err := ParseSpeed("  FAST "); err != nil || s != SpeedFast {
		t.Errorf("Expected case-insensitive parse, got %s (%v)", s, err)
	}
	if Speed(7).Valid() {
		t.Error("Expected Speed(7) to be invalid")
	}
	if Speed(7).Interval() != DefaultSpeed.Interval() {
		t.Error("Expected invalid speed to fall back to the default interval")
	}
}

func TestZeroSpeedIsUnset(t *testing.T) {
	var s Speed
	if s.Valid() {
		t.Error("Expected zero speed to be invalid")
	}
	if s.Interval() != parameter.SpeedMediumInterval {
		t.Errorf("Expected default interval %v, got %v", parameter.SpeedMediumInterval, s.Interval())
	}
	if s.Next() != DefaultSpeed {
		t.Errorf("Expected Next of unset to be %s, got %s", DefaultSpeed, s.Next())
	}
	for _, sp := range Speeds() {
		if !sp.Valid() {
			t.Errorf("Expected %s to be valid", sp)
		}
	}
}

func TestSpeedTextRoundTrip(t *testing.T) {
	var s Speed
	if err := s.UnmarshalText([]byte("extreme")); err != nil || s != SpeedExtreme {
		t.Errorf("Expected extreme, got %s (%v)", s, err)
	}
	if _, err := Speed(9).MarshalText(); err == nil {
		t.Error("Expected error marshalling an invalid speed")
	}
}

// TestStateTransitions verifies the lifecycle table
func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		valid    bool
	}{
		{StateIdle, StateRunning, true},
		{StateIdle, StatePaused, false},
		{StateIdle, StateGameOver, false},
		{StateRunning, StatePaused, true},
		{StateRunning, StateGameOver, true},
		{StateRunning, StateIdle, true},
		{StatePaused, StateRunning, true},
		{StatePaused, StateGameOver, false},
		{StatePaused, StateIdle, true},
		{StateGameOver, StateIdle, true},
		{StateGameOver, StateRunning, false},
		{StateGameOver, StatePaused, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.valid, got)
		}
	}
	if State(42).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", State(42))
	}
}
