package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/events"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

const eventBuffer = 100

// Sound is the audio surface the loop controls
type Sound interface {
	events.Handler[*engine.Game]
	ToggleMute() bool
	Muted() bool
	Enabled() bool
}

// Config wires an App; Sound may be nil
type Config struct {
	Screen    tcell.Screen
	Game      *engine.Game
	Scheduler *engine.ClockScheduler
	Keys      *input.KeyTable
	Sound     Sound
	Logger    zerolog.Logger
}

// App is the terminal front-end loop
// All game calls happen on the goroutine running Run
type App struct {
	screen    tcell.Screen
	game      *engine.Game
	scheduler *engine.ClockScheduler
	router    *events.Router[*engine.Game]
	keys      *input.KeyTable
	renderer  *render.TerminalRenderer
	sound     Sound
	logger    zerolog.Logger

	dirty bool
}

// New creates the loop and registers its event handlers on the game queue
func New(cfg Config) *App {
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	a := &App{
		screen:    cfg.Screen,
		game:      cfg.Game,
		scheduler: cfg.Scheduler,
		router:    events.NewRouter[*engine.Game](cfg.Game.Queue()),
		keys:      keys,
		renderer:  render.NewTerminalRenderer(),
		sound:     cfg.Sound,
		logger:    cfg.Logger.With().Str("component", "terminal").Logger(),
		dirty:     true,
	}

	a.router.Register(events.HandlerFunc[*engine.Game]{
		Types: events.AllTypes(),
		Fn:    func(*engine.Game, events.GameEvent) { a.dirty = true },
	})
	a.router.Register(NewLogHandler(a.logger))
	if a.sound != nil {
		a.router.Register(a.sound)
	}
	return a
}

// Router exposes the dispatcher for additional handlers
func (a *App) Router() *events.Router[*engine.Game] {
	return a.router
}

// Run polls input and ticks until quit or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	a.sync()
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug().Msg("Context cancelled")
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.logger.Debug().Msg("Quit requested")
				return nil
			}

		case task := <-a.scheduler.Due():
			task.Run()
		}

		a.sync()
	}
}

// sync dispatches queued game events and redraws when anything changed
func (a *App) sync() {
	a.router.DispatchAll(a.game)
	if !a.dirty {
		return
	}
	a.renderer.Draw(a.screen, a.game.Snapshot(), a.status())
	a.screen.Show()
	a.dirty = false
}

func (a *App) status() render.Status {
	if a.sound == nil || !a.sound.Enabled() {
		return render.Status{NoAudio: true}
	}
	return render.Status{Muted: a.sound.Muted()}
}

// handleEvent returns false when the loop should exit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, r := input.FromTcell(ev)
		return a.handleIntent(a.keys.Resolve(k, r))

	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

func (a *App) handleIntent(intent input.Intent) bool {
	switch intent {
	case input.IntentNone:
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		if a.sound != nil {
			a.sound.ToggleMute()
			a.dirty = true
		}
	default:
		input.Apply(a.game, intent)
	}
	return true
}
