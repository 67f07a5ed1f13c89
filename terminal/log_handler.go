package terminal

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
)

// LogHandler writes notable game events to the debug log
type LogHandler struct {
	logger zerolog.Logger
}

// NewLogHandler creates a handler logging with the given logger
func NewLogHandler(logger zerolog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

func (h *LogHandler) HandleEvent(g *engine.Game, ev events.GameEvent) {
	e := h.logger.Debug().Str("event", ev.Type.String()).Int64("frame", ev.Frame)
	if g != nil {
		e = e.Str("game", g.SessionID())
	}

	switch p := ev.Payload.(type) {
	case *events.FoodEatenPayload:
		e = e.Int("score", p.Score).Bool("board_full", !p.HasNext)
	case *events.GameOverPayload:
		e = e.Str("cause", p.Cause.String()).Int("score", p.Score).Bool("record", p.NewRecord)
	case *events.SpeedPayload:
		e = e.Str("speed", p.Name).Dur("interval", p.Interval)
	case *events.DirectionPayload:
		e = e.Str("direction", p.Direction.String())
	}
	e.Msg("Game event")
}

// EventTypes skips ticks, which would flood the log
func (h *LogHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventStarted,
		events.EventPaused,
		events.EventResumed,
		events.EventFoodEaten,
		events.EventGameOver,
		events.EventReset,
		events.EventSpeedChanged,
		events.EventDirectionChanged,
	}
}
