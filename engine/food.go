package engine

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// RandSource is the subset of a random generator food placement needs
type RandSource interface {
	Intn(n int) int
}

// PlaceFood picks a cell of the n×n grid not present in occupied
// Uniform rejection sampling is bounded by parameter.FoodMaxSamples, after
// which the first free cell in row-major order is returned
// Returns false only when every cell is occupied
func PlaceFood(rng RandSource, occupied []core.Cell, n int) (core.Cell, bool) {
	if n <= 0 || len(occupied) >= n*n {
		return core.Cell{}, false
	}

	for i := 0; i < parameter.FoodMaxSamples; i++ {
		c := core.Cell{X: rng.Intn(n), Y: rng.Intn(n)}
		if !core.Contains(occupied, c) {
			return c, true
		}
	}

	// Crowded board: scan instead of sampling forever
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := core.Cell{X: x, Y: y}
			if !core.Contains(occupied, c) {
				return c, true
			}
		}
	}
	return core.Cell{}, false
}
