package engine

import (
	"github.com/lixenwraith/snake/core"
)

// NewTestGame creates a seeded game on an n×n grid driven by a manual scheduler
// This is a test helper for packages that need a game in a known state
func NewTestGame(n int, seed uint64) (*Game, *ManualScheduler) {
	sched := NewManualScheduler()
	g := NewGame(Options{
		GridSize:  n,
		Seed:      seed,
		Scheduler: sched,
	})
	return g, sched
}

// PlaceBoard overwrites the snake, pending direction and food of a game
// This is a test helper; callers are responsible for a consistent board
func (g *Game) PlaceBoard(snake []core.Cell, dir core.Direction, food core.Cell) {
	g.snake = append(g.snake[:0:0], snake...)
	g.direction = dir
	g.heading = core.None
	g.food = food
	g.hasFood = true
}
