package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/snake/input"
)

// keyFromEbiten converts an ebiten key to the front-end independent form
// ctrl reports whether a control modifier is held
func keyFromEbiten(k ebiten.Key, ctrl bool) (input.Key, rune) {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		r := rune('a' + (k - ebiten.KeyA))
		if ctrl {
			switch r {
			case 'c':
				return input.KeyCtrlC, 0
			case 'q':
				return input.KeyCtrlQ, 0
			}
		}
		return input.KeyRune, r
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return input.KeyRune, rune('0' + (k - ebiten.KeyDigit0))
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return input.KeyRune, rune('0' + (k - ebiten.KeyNumpad0))
	}

	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyUp, 0
	case ebiten.KeyArrowDown:
		return input.KeyDown, 0
	case ebiten.KeyArrowLeft:
		return input.KeyLeft, 0
	case ebiten.KeyArrowRight:
		return input.KeyRight, 0
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyEnter, 0
	case ebiten.KeyEscape:
		return input.KeyEscape, 0
	case ebiten.KeyTab:
		return input.KeyTab, 0
	case ebiten.KeyBackspace:
		return input.KeyBackspace, 0
	case ebiten.KeySpace:
		return input.KeyRune, ' '
	case ebiten.KeyEqual:
		return input.KeyRune, '='
	case ebiten.KeyNumpadAdd:
		return input.KeyRune, '+'
	default:
		return input.KeyNone, 0
	}
}
