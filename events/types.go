package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventStarted signals Idle -> Running
	// Trigger: Start command, first direction key | Payload: nil
	EventStarted EventType = iota

	// EventPaused signals Running -> Paused
	// Trigger: Pause command | Payload: nil
	EventPaused

	// EventResumed signals Paused -> Running
	// Trigger: Resume command | Payload: *SpeedPayload (interval read at resume)
	EventResumed

	// EventTick signals one completed simulation step
	// Trigger: tick source | Consumer: renderer | Payload: *TickPayload
	EventTick

	// EventFoodEaten signals the head reached the food cell
	// Trigger: simulation step | Consumer: audio, HUD | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventGameOver signals a wall or body collision
	// Trigger: simulation step | Consumer: renderer overlay, audio | Payload: *GameOverPayload
	EventGameOver

	// EventReset signals any -> Idle with a fresh board
	// Trigger: Reset command | Payload: nil
	EventReset

	// EventSpeedChanged signals a new speed setting
	// Trigger: SetSpeed command | Payload: *SpeedPayload
	EventSpeedChanged

	// EventDirectionChanged signals an accepted direction change
	// Trigger: SetDirection command | Payload: *DirectionPayload
	EventDirectionChanged
)

var eventNames = map[EventType]string{
	EventStarted:          "started",
	EventPaused:           "paused",
	EventResumed:          "resumed",
	EventTick:             "tick",
	EventFoodEaten:        "food_eaten",
	EventGameOver:         "game_over",
	EventReset:            "reset",
	EventSpeedChanged:     "speed_changed",
	EventDirectionChanged: "direction_changed",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick number within the current game
	Timestamp time.Time
}

// AllTypes returns every event type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, len(eventNames))
	for t := EventStarted; t <= EventDirectionChanged; t++ {
		out = append(out, t)
	}
	return out
}
