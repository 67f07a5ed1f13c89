package events

import (
	"time"

	"github.com/lixenwraith/snake/core"
)

// Cause identifies what ended a game
type Cause uint8

const (
	CauseWall Cause = iota
	CauseSelf
)

func (c Cause) String() string {
	if c == CauseSelf {
		return "self"
	}
	return "wall"
}

// TickPayload describes the board after one step
type TickPayload struct {
	Head   core.Cell
	Length int
}

// FoodEatenPayload carries the eaten cell and the replacement food
type FoodEatenPayload struct {
	At      core.Cell
	Next    core.Cell
	HasNext bool // False when the board is full
	Score   int
}

// GameOverPayload carries the final result
type GameOverPayload struct {
	Cause     Cause
	At        core.Cell // Rejected head position
	Score     int
	HighScore int
	NewRecord bool
}

// SpeedPayload carries the speed setting in effect
type SpeedPayload struct {
	Name     string
	Interval time.Duration
}

// DirectionPayload carries the accepted pending direction
type DirectionPayload struct {
	Direction core.Direction
}
