package canvas

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// Sound is the audio surface the canvas controls
type Sound interface {
	events.Handler[*engine.Game]
	ToggleMute() bool
	Muted() bool
}

// Config wires a canvas Game; Sound may be nil
type Config struct {
	Game      *engine.Game
	Scheduler *engine.ManualScheduler
	Keys      *input.KeyTable
	Sound     Sound
	CellSize  int
	Logger    zerolog.Logger
}

// Game adapts the core to ebiten's frame loop
// Ticks come from advancing the manual scheduler by one frame per Update
type Game struct {
	game      *engine.Game
	scheduler *engine.ManualScheduler
	router    *events.Router[*engine.Game]
	keys      *input.KeyTable
	sound     Sound
	drawer    *drawer
	logger    zerolog.Logger

	pressed []ebiten.Key
}

// New creates the adapter and loads the Go regular font
func New(cfg Config) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	c := &Game{
		game:      cfg.Game,
		scheduler: cfg.Scheduler,
		router:    events.NewRouter[*engine.Game](cfg.Game.Queue()),
		keys:      keys,
		sound:     cfg.Sound,
		drawer: &drawer{
			cellSize: cfg.CellSize,
			hud:      &text.GoTextFace{Source: src, Size: 14},
			title:    &text.GoTextFace{Source: src, Size: 28},
		},
		logger: cfg.Logger.With().Str("component", "canvas").Logger(),
	}
	if c.sound != nil {
		c.router.Register(c.sound)
	}
	return c, nil
}

// Update handles keys pressed this frame and advances game time by one frame
func (c *Game) Update() error {
	c.pressed = inpututil.AppendJustPressedKeys(c.pressed[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	for _, k := range c.pressed {
		key, r := keyFromEbiten(k, ctrl)
		if !c.handleIntent(c.keys.Resolve(key, r)) {
			return ebiten.Termination
		}
	}

	c.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// step advances the scheduler and dispatches what the ticks emitted
func (c *Game) step(d time.Duration) {
	c.scheduler.Advance(d)
	c.router.DispatchAll(c.game)
}

// handleIntent returns false when the window should close
func (c *Game) handleIntent(intent input.Intent) bool {
	switch intent {
	case input.IntentNone:
	case input.IntentQuit:
		c.logger.Debug().Msg("Quit requested")
		return false
	case input.IntentToggleMute:
		if c.sound != nil {
			c.sound.ToggleMute()
		}
	default:
		input.Apply(c.game, intent)
	}
	return true
}

// Draw paints the current snapshot
func (c *Game) Draw(screen *ebiten.Image) {
	st := render.Status{NoAudio: c.sound == nil}
	if c.sound != nil {
		st.Muted = c.sound.Muted()
	}
	c.drawer.draw(screen, c.game.Snapshot(), st)
}

// Layout keeps the logical canvas at N·cell pixels square
func (c *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := c.game.GridSize() * c.drawer.cellSize
	return px, px
}
