package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/score"
	"github.com/lixenwraith/snake/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, logFile := core.SetupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyTable(cfg.KeymapFile)
	if err != nil {
		return err
	}

	keeper, err := score.OpenKeeper(cfg.ScoreFile, cfg.NoSave, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)

	var sound terminal.Sound
	if cfg.Audio {
		sm := audio.NewSoundManager(logger)
		// Non-fatal, the HUD reports a missing device
		initSound(sm, logger)
		defer sm.Cleanup()
		sound = sm
	}

	scheduler := engine.NewClockScheduler(4)
	defer scheduler.Close()

	game := engine.NewGame(engine.Options{
		GridSize:  cfg.GridSize,
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
		Scheduler: scheduler,
		Scores:    keeper,
		Logger:    &logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.New(terminal.Config{
		Screen:    screen,
		Game:      game,
		Scheduler: scheduler,
		Keys:      keys,
		Sound:     sound,
		Logger:    logger,
	})

	logger.Info().Int("grid", cfg.GridSize).Str("speed", cfg.Speed.String()).Msg("Terminal front-end started")
	err = app.Run(ctx)
	logger.Info().Int("games", game.Games()).Int("high_score", game.HighScore()).Msg("Terminal front-end stopped")
	return err
}

type soundDevice interface {
	Initialize() error
}

// initSound opens the audio device, logging the failure and continuing silent
func initSound(sd soundDevice, logger zerolog.Logger) bool {
	if err := sd.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Sound disabled")
		return false
	}
	return true
}
