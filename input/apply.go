package input

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
)

// Apply runs the core command behind a game intent
// Returns whether the game accepted it; front-end intents (mute, quit) are
// never applied here and return false
func Apply(g *engine.Game, intent Intent) bool {
	switch intent {
	case IntentUp:
		return g.SetDirection(core.Up)
	case IntentDown:
		return g.SetDirection(core.Down)
	case IntentLeft:
		return g.SetDirection(core.Left)
	case IntentRight:
		return g.SetDirection(core.Right)

	case IntentStartPause:
		return g.StartOrToggle()
	case IntentPause:
		return g.TogglePause()
	case IntentReset:
		return g.Reset()

	case IntentSpeedNext:
		return g.SetSpeed(g.Speed().Next())
	case IntentSpeedSlow:
		return g.SetSpeed(engine.SpeedSlow)
	case IntentSpeedMedium:
		return g.SetSpeed(engine.SpeedMedium)
	case IntentSpeedFast:
		return g.SetSpeed(engine.SpeedFast)
	case IntentSpeedExtreme:
		return g.SetSpeed(engine.SpeedExtreme)

	default:
		return false
	}
}
