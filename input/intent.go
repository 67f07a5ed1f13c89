package input

// Intent is a semantic action resolved from a key
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Lifecycle
	IntentStartPause // Space, Enter: start from Idle, otherwise toggle pause
	IntentPause      // p: toggle pause only
	IntentReset      // r: reset or restart after game over

	// Speed
	IntentSpeedNext // +: cycle to the next faster setting
	IntentSpeedSlow
	IntentSpeedMedium
	IntentSpeedFast
	IntentSpeedExtreme

	// Front-end
	IntentToggleMute
	IntentQuit
)

// IsSteering reports whether the intent selects a direction
func (i Intent) IsSteering() bool {
	return i >= IntentUp && i <= IntentRight
}

func (i Intent) String() string {
	if name, ok := ActionName(i); ok {
		return name
	}
	return "unknown"
}
