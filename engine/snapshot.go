package engine

import "github.com/lixenwraith/snake/core"

// Snapshot is an immutable copy of everything a renderer draws
type Snapshot struct {
	GridSize  int
	Snake     []core.Cell // Head first
	Food      core.Cell
	HasFood   bool
	Heading   core.Direction
	Score     int
	HighScore int
	State     State
	Speed     Speed
	Frame     int64
	Games     int
	SessionID string
}

// Snapshot captures the current board
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GridSize:  g.gridSize,
		Snake:     g.Snake(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Heading:   g.Heading(),
		Score:     g.score,
		HighScore: g.highScore,
		State:     g.state,
		Speed:     g.speed,
		Frame:     g.frame,
		Games:     g.games,
		SessionID: g.sessionID,
	}
}

// Head returns the head cell
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}

// FacingOrDefault returns the heading, or right before any direction is chosen
func (s Snapshot) FacingOrDefault() core.Direction {
	if s.Heading.IsSet() {
		return s.Heading
	}
	return core.Right
}
