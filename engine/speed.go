package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/snake/parameter"
)

// Speed is one of the fixed tick interval settings
// The zero value is unset and selects DefaultSpeed where a setting is optional
type Speed uint8

const (
	SpeedSlow Speed = iota + 1
	SpeedMedium
	SpeedFast
	SpeedExtreme
)

// DefaultSpeed is the speed of a fresh game
const DefaultSpeed = SpeedMedium

var speedNames = [...]string{"slow", "medium", "fast", "extreme"}

var speedIntervals = [...]time.Duration{
	parameter.SpeedSlowInterval,
	parameter.SpeedMediumInterval,
	parameter.SpeedFastInterval,
	parameter.SpeedExtremeInterval,
}

// Speeds returns all settings from slowest to fastest
func Speeds() []Speed {
	return []Speed{SpeedSlow, SpeedMedium, SpeedFast, SpeedExtreme}
}

// Valid reports whether s is a known setting
func (s Speed) Valid() bool {
	return s >= SpeedSlow && s <= SpeedExtreme
}

// Interval returns the tick interval of the setting
func (s Speed) Interval() time.Duration {
	if !s.Valid() {
		return speedIntervals[DefaultSpeed-1]
	}
	return speedIntervals[s-1]
}

// Next returns the following faster setting, wrapping to slow after extreme
func (s Speed) Next() Speed {
	if !s.Valid() {
		return DefaultSpeed
	}
	if s == SpeedExtreme {
		return SpeedSlow
	}
	return s + 1
}

func (s Speed) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return speedNames[s-1]
}

// ParseSpeed resolves a setting by name, case-insensitive
func ParseSpeed(name string) (Speed, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speedNames {
		if n == name {
			return Speed(i + 1), nil
		}
	}
	return DefaultSpeed, fmt.Errorf("unknown speed %q (want slow, medium, fast or extreme)", name)
}

// MarshalText implements encoding.TextMarshaler for config files
func (s Speed) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid speed %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files
func (s *Speed) UnmarshalText(text []byte) error {
	v, err := ParseSpeed(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
