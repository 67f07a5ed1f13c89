package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/canvas"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/score"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-canvas: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake-canvas: %v\n", err)
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

	var sound canvas.Sound
	if cfg.Audio {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Sound disabled")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	// Ticks advance from Update, one frame per call
	scheduler := engine.NewManualScheduler()
	game := engine.NewGame(engine.Options{
		GridSize:  cfg.GridSize,
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
		Scheduler: scheduler,
		Scores:    keeper,
		Logger:    &logger,
	})

	c, err := canvas.New(canvas.Config{
		Game:      game,
		Scheduler: scheduler,
		Keys:      keys,
		Sound:     sound,
		CellSize:  cfg.CellSize,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	px := cfg.CanvasPixels()
	ebiten.SetWindowSize(px, px)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(parameter.FrameRate)

	logger.Info().Int("grid", cfg.GridSize).Int("pixels", px).Msg("Canvas front-end started")
	if err := ebiten.RunGame(c); err != nil {
		return fmt.Errorf("run canvas: %w", err)
	}
	logger.Info().Int("games", game.Games()).Int("high_score", game.HighScore()).Msg("Canvas front-end stopped")
	return nil
}
