package input

import (
	"unicode"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Escape, Ctrl+*)
	SpecialKeys map[Key]Intent

	// Rune bindings; letters also match their other case
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]Intent{
			KeyUp:     IntentUp,
			KeyDown:   IntentDown,
			KeyLeft:   IntentLeft,
			KeyRight:  IntentRight,
			KeyEnter:  IntentStartPause,
			KeyEscape: IntentQuit,
			KeyCtrlC:  IntentQuit,
			KeyCtrlQ:  IntentQuit,
		},

		Runes: map[rune]Intent{
			// WASD
			'w': IntentUp,
			'a': IntentLeft,
			's': IntentDown,
			'd': IntentRight,

			' ': IntentStartPause,
			'p': IntentPause,
			'r': IntentReset,

			'+': IntentSpeedNext,
			'=': IntentSpeedNext, // Unshifted +
			'1': IntentSpeedSlow,
			'2': IntentSpeedMedium,
			'3': IntentSpeedFast,
			'4': IntentSpeedExtreme,

			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Resolve returns the intent bound to a key, or IntentNone
func (kt *KeyTable) Resolve(k Key, r rune) Intent {
	if k != KeyRune {
		return kt.SpecialKeys[k]
	}
	if i, ok := kt.Runes[r]; ok {
		return i
	}
	// Case-insensitive fallback so CapsLock does not break steering
	if lower := unicode.ToLower(r); lower != r {
		return kt.Runes[lower]
	}
	if upper := unicode.ToUpper(r); upper != r {
		return kt.Runes[upper]
	}
	return IntentNone
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[Key]Intent, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Intent, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
