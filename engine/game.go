package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/parameter"
)

// HighScores is the durable best-score collaborator
// Implementations are best-effort: failures surface as a zero load or an unsaved result
type HighScores interface {
	LoadHighScore() int
	SaveHighScoreIfHigher(score int) (best int, saved bool)
}

// Options configures a new game; zero values select defaults
type Options struct {
	GridSize  int
	Speed     Speed
	Seed      uint64 // 0 seeds from the wall clock
	Scheduler Scheduler
	Scores    HighScores
	Queue     *events.Queue
	Logger    *zerolog.Logger
	Now       func() time.Time
}

// Game owns the snake, food, score and lifecycle state of one board
// Not safe for concurrent use: commands and ticks run on the owner loop
type Game struct {
	gridSize int

	snake     []core.Cell // Head first
	food      core.Cell
	hasFood   bool
	direction core.Direction // Pending, applied on the next tick
	heading   core.Direction // Direction of the last executed step

	score     int
	highScore int
	state     State
	speed     Speed

	frame     int64 // Ticks in the current game
	games     int   // Games started since construction
	sessionID string

	rng       RandSource
	scheduler Scheduler
	ticker    Task
	scores    HighScores
	queue     *events.Queue
	now       func() time.Time
	logger    zerolog.Logger
}

// NewGame creates a game in Idle with a fresh board and the persisted high score loaded
func NewGame(opts Options) *Game {
	if opts.GridSize <= 0 {
		opts.GridSize = parameter.GridSize
	}
	if !opts.Speed.Valid() {
		opts.Speed = DefaultSpeed
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewManualScheduler()
	}
	if opts.Scores == nil {
		opts.Scores = &sessionBest{}
	}
	if opts.Queue == nil {
		opts.Queue = events.NewQueue()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	g := &Game{
		gridSize:  opts.GridSize,
		speed:     opts.Speed,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		scheduler: opts.Scheduler,
		scores:    opts.Scores,
		queue:     opts.Queue,
		now:       opts.Now,
		logger:    logger.With().Str("component", "game").Logger(),
	}
	g.highScore = g.scores.LoadHighScore()
	g.Reset()
	return g
}

// StartCell returns the cell a fresh snake occupies
func (g *Game) StartCell() core.Cell {
	return core.Cell{X: g.gridSize / 2, Y: g.gridSize / 2}
}

// Reset stops the tick source and returns to Idle with a new board, from any state
func (g *Game) Reset() bool {
	g.stopTicker()

	g.snake = []core.Cell{g.StartCell()}
	g.direction = core.None
	g.heading = core.None
	g.score = 0
	g.frame = 0
	g.food, g.hasFood = PlaceFood(g.rng, g.snake, g.gridSize)
	g.enter(StateIdle)
	g.sessionID = uuid.NewString()

	g.logger.Debug().Str("game", g.sessionID).Msg("Board reset")
	g.emit(events.EventReset, nil)
	return true
}

// Start begins an Idle game, defaulting the direction to right
func (g *Game) Start() bool {
	if g.state != StateIdle || !g.enter(StateRunning) {
		return false
	}
	if !g.direction.IsSet() {
		g.direction = core.Right
	}
	g.games++
	g.startTicker()

	g.logger.Info().Str("game", g.sessionID).Str("speed", g.speed.String()).Msg("Game started")
	g.emit(events.EventStarted, nil)
	return true
}

// Pause stops the tick source of a running game, keeping all state
func (g *Game) Pause() bool {
	if g.state != StateRunning || !g.enter(StatePaused) {
		return false
	}
	g.stopTicker()

	g.logger.Debug().Str("game", g.sessionID).Msg("Game paused")
	g.emit(events.EventPaused, nil)
	return true
}

// Resume restarts the tick source at the speed currently selected
func (g *Game) Resume() bool {
	if g.state != StatePaused || !g.enter(StateRunning) {
		return false
	}
	g.startTicker()

	g.logger.Debug().Str("game", g.sessionID).Dur("interval", g.speed.Interval()).Msg("Game resumed")
	g.emit(events.EventResumed, g.speedPayload())
	return true
}

// TogglePause pauses a running game or resumes a paused one
func (g *Game) TogglePause() bool {
	switch g.state {
	case StateRunning:
		return g.Pause()
	case StatePaused:
		return g.Resume()
	default:
		return false
	}
}

// StartOrToggle starts an Idle game, otherwise toggles pause
func (g *Game) StartOrToggle() bool {
	if g.state == StateIdle {
		return g.Start()
	}
	return g.TogglePause()
}

// SetDirection sets the pending direction
// Rejected when unset or exactly opposite to the current movement vector
// In Idle an accepted direction also starts the game; Paused and GameOver ignore it
func (g *Game) SetDirection(d core.Direction) bool {
	if !d.IsSet() {
		return false
	}

	switch g.state {
	case StateIdle:
		g.direction = d
		g.emit(events.EventDirectionChanged, &events.DirectionPayload{Direction: d})
		return g.Start()

	case StateRunning:
		if d.Opposite(g.Heading()) {
			return false
		}
		if d == g.direction {
			return true
		}
		g.direction = d
		g.emit(events.EventDirectionChanged, &events.DirectionPayload{Direction: d})
		return true

	default:
		return false
	}
}

// SetSpeed selects a tick interval
// A running game restarts its tick source at the new interval; a paused one picks it up on resume
func (g *Game) SetSpeed(s Speed) bool {
	if !s.Valid() {
		return false
	}
	if s == g.speed {
		return true
	}
	g.speed = s
	if g.state == StateRunning {
		g.startTicker()
	}

	g.logger.Debug().Str("speed", s.String()).Msg("Speed changed")
	g.emit(events.EventSpeedChanged, g.speedPayload())
	return true
}

// Tick advances a running game by one cell
// Returns false when the game is not running
func (g *Game) Tick() bool {
	if g.state != StateRunning {
		return false
	}

	next := g.snake[0].Add(g.direction)

	// Tail still counts as occupied: it has not moved yet this step
	if !next.In(g.gridSize) {
		g.gameOver(events.CauseWall, next)
		return true
	}
	if core.Contains(g.snake, next) {
		g.gameOver(events.CauseSelf, next)
		return true
	}

	g.heading = g.direction
	g.frame++

	if g.hasFood && next == g.food {
		// Prepend and keep the tail
		g.snake = append(g.snake, core.Cell{})
		copy(g.snake[1:], g.snake)
		g.snake[0] = next

		g.score += parameter.FoodScore
		g.food, g.hasFood = PlaceFood(g.rng, g.snake, g.gridSize)

		g.emit(events.EventFoodEaten, &events.FoodEatenPayload{
			At:      next,
			Next:    g.food,
			HasNext: g.hasFood,
			Score:   g.score,
		})
	} else {
		// Prepend and drop the tail
		copy(g.snake[1:], g.snake[:len(g.snake)-1])
		g.snake[0] = next
	}

	g.emit(events.EventTick, &events.TickPayload{Head: next, Length: len(g.snake)})
	return true
}

// gameOver stops the tick source, freezes the score and persists it if it is a record
func (g *Game) gameOver(cause events.Cause, at core.Cell) {
	g.stopTicker()
	g.enter(StateGameOver)

	prev := g.highScore
	best, saved := g.scores.SaveHighScoreIfHigher(g.score)
	if best > g.highScore {
		g.highScore = best
	}
	// A failed save still shows the record in memory
	if g.score > g.highScore {
		g.highScore = g.score
	}

	g.logger.Info().
		Str("game", g.sessionID).
		Str("cause", cause.String()).
		Int("score", g.score).
		Int("high_score", g.highScore).
		Bool("saved", saved).
		Int64("ticks", g.frame).
		Msg("Game over")

	g.emit(events.EventGameOver, &events.GameOverPayload{
		Cause:     cause,
		At:        at,
		Score:     g.score,
		HighScore: g.highScore,
		NewRecord: g.score > prev,
	})
}

// enter moves to state to when the transition table allows it
func (g *Game) enter(to State) bool {
	if !CanTransition(g.state, to) {
		g.logger.Debug().Str("from", g.state.String()).Str("to", to.String()).Msg("Transition ignored")
		return false
	}
	g.state = to
	return true
}

func (g *Game) startTicker() {
	g.stopTicker()
	g.ticker = g.scheduler.Every(g.speed.Interval(), g.onTick)
}

func (g *Game) stopTicker() {
	if g.ticker != nil {
		g.ticker.Stop()
		g.ticker = nil
	}
}

func (g *Game) onTick() {
	g.Tick()
}

func (g *Game) emit(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.now(),
	})
}

func (g *Game) speedPayload() *events.SpeedPayload {
	return &events.SpeedPayload{Name: g.speed.String(), Interval: g.speed.Interval()}
}

// ===== ACCESSORS =====

// State returns the lifecycle state
func (g *Game) State() State { return g.state }

// Score returns the current score
func (g *Game) Score() int { return g.score }

// HighScore returns the best score known to this process
func (g *Game) HighScore() int { return g.highScore }

// Speed returns the selected speed
func (g *Game) Speed() Speed { return g.speed }

// GridSize returns the number of cells per axis
func (g *Game) GridSize() int { return g.gridSize }

// Direction returns the pending direction
func (g *Game) Direction() core.Direction { return g.direction }

// Heading returns the current movement vector: the last executed step, or the
// pending direction before the first step
func (g *Game) Heading() core.Direction {
	if g.heading.IsSet() {
		return g.heading
	}
	return g.direction
}

// Snake returns a copy of the body, head first
func (g *Game) Snake() []core.Cell {
	out := make([]core.Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Length returns the number of body cells
func (g *Game) Length() int { return len(g.snake) }

// Food returns the food cell; false when the board is full
func (g *Game) Food() (core.Cell, bool) { return g.food, g.hasFood }

// Frame returns the number of ticks in the current game
func (g *Game) Frame() int64 { return g.frame }

// Games returns the number of games started
func (g *Game) Games() int { return g.games }

// SessionID identifies the current board in logs
func (g *Game) SessionID() string { return g.sessionID }

// Queue returns the event queue the game emits into
func (g *Game) Queue() *events.Queue { return g.queue }

// sessionBest keeps the best score in memory when no store is configured
type sessionBest struct {
	best int
}

func (s *sessionBest) LoadHighScore() int { return s.best }

func (s *sessionBest) SaveHighScoreIfHigher(score int) (int, bool) {
	if score > s.best {
		s.best = score
		return s.best, true
	}
	return s.best, false
}
