package parameter

import "time"

// Board geometry
const (
	// CellSize is the pixel edge of one grid cell on the canvas surface
	CellSize = 20

	// CanvasSize is the default pixel edge of the square canvas
	CanvasSize = 400

	// GridSize is the default number of cells per axis (CanvasSize / CellSize)
	GridSize = CanvasSize / CellSize

	// MinGridSize keeps room for the start cell and a few moves in every direction
	MinGridSize = 5

	// MaxGridSize bounds the terminal board to something a screen can show
	MaxGridSize = 100

	// MinCellSize and MaxCellSize bound the canvas cell edge in pixels
	MinCellSize = 4
	MaxCellSize = 64
)

// Scoring
const (
	// FoodScore is the fixed increment awarded per food eaten
	FoodScore = 10

	// HighScoreKey is the durable key holding the best score
	HighScoreKey = "snakeHighScore"
)

// Food placement
const (
	// FoodMaxSamples bounds rejection sampling before the linear scan fallback
	FoodMaxSamples = 256
)

// Tick intervals per speed setting
const (
	SpeedSlowInterval    = 200 * time.Millisecond
	SpeedMediumInterval  = 150 * time.Millisecond
	SpeedFastInterval    = 100 * time.Millisecond
	SpeedExtremeInterval = 50 * time.Millisecond
)

// FrameRate is the canvas update rate (ebiten TPS)
const FrameRate = 60
