package core

// Direction is a unit step on the grid
// The zero value is the unset direction used before the first move
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsSet reports whether d is one of the four movement directions
func (d Direction) IsSet() bool {
	return d != None
}

// Opposite reports whether o is the exact reverse of d
// An unset direction has no opposite
func (d Direction) Opposite(o Direction) bool {
	if !d.IsSet() || !o.IsSet() {
		return false
	}
	return d.DX == -o.DX && d.DY == -o.DY
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
