package input

import (
	"github.com/gdamore/tcell/v2"
)

// Key identifies a non-rune key independent of the front-end
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, carried separately
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyCtrlC
	KeyCtrlQ
)

// keyNames are the lower-case names accepted in keymap files
var keyNames = map[string]Key{
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"ctrl+c":    KeyCtrlC,
	"ctrl+q":    KeyCtrlQ,
}

// KeyByName resolves a keymap key name
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// FromTcell converts a tcell key event
// Unknown keys return KeyNone
func FromTcell(ev *tcell.EventKey) (Key, rune) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyRune, ev.Rune()
	case tcell.KeyUp:
		return KeyUp, 0
	case tcell.KeyDown:
		return KeyDown, 0
	case tcell.KeyLeft:
		return KeyLeft, 0
	case tcell.KeyRight:
		return KeyRight, 0
	case tcell.KeyEnter:
		return KeyEnter, 0
	case tcell.KeyEscape:
		return KeyEscape, 0
	case tcell.KeyTab:
		return KeyTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, 0
	case tcell.KeyCtrlC:
		return KeyCtrlC, 0
	case tcell.KeyCtrlQ:
		return KeyCtrlQ, 0
	default:
		return KeyNone, 0
	}
}
