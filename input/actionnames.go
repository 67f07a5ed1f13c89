package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"up":    IntentUp,
	"down":  IntentDown,
	"left":  IntentLeft,
	"right": IntentRight,

	"start_pause": IntentStartPause,
	"pause":       IntentPause,
	"reset":       IntentReset,

	"speed_next":    IntentSpeedNext,
	"speed_slow":    IntentSpeedSlow,
	"speed_medium":  IntentSpeedMedium,
	"speed_fast":    IntentSpeedFast,
	"speed_extreme": IntentSpeedExtreme,

	"toggle_mute": IntentToggleMute,
	"quit":        IntentQuit,
}

// intentNames is the reverse of actionRegistry
var intentNames = func() map[Intent]string {
	m := make(map[Intent]string, len(actionRegistry))
	for name, intent := range actionRegistry {
		m[intent] = name
	}
	return m
}()

// ActionIntent resolves an action name
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}

// ActionName returns the canonical name of an intent
func ActionName(i Intent) (string, bool) {
	name, ok := intentNames[i]
	return name, ok
}
