package config

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/snake/engine"
)

// Flags binds command-line overrides to a flag set
// Only flags given on the command line override the file and defaults
type Flags struct {
	fs *flag.FlagSet

	path    string
	grid    int
	cell    int
	speed   string
	seed    uint64
	scores  string
	keymap  string
	noAudio bool
	noSave  bool
	debug   bool
}

// RegisterFlags defines the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.path, "config", "", "TOML config file")
	fs.IntVar(&f.grid, "grid", d.GridSize, "Cells per side")
	fs.IntVar(&f.cell, "cell", d.CellSize, "Canvas pixels per cell")
	fs.StringVar(&f.speed, "speed", d.Speed.String(), "Speed: slow, medium, fast, extreme")
	fs.Uint64Var(&f.seed, "seed", 0, "Food placement seed (0 = random)")
	fs.StringVar(&f.scores, "scores", "", "High score file (default $XDG_STATE_HOME/snake/scores.toml)")
	fs.StringVar(&f.keymap, "keymap", "", "TOML keymap override file")
	fs.BoolVar(&f.noAudio, "no-audio", false, "Disable sound")
	fs.BoolVar(&f.noSave, "no-save", false, "Keep the high score in memory only")
	fs.BoolVar(&f.debug, "debug", false, "Write a debug log under logs/")
	return f
}

// Resolve builds the configuration: defaults, then the config file, then set flags
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		loaded, err := Load(f.path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "grid":
			cfg.GridSize = f.grid
		case "cell":
			cfg.CellSize = f.cell
		case "speed":
			var s engine.Speed
			if s, err = engine.ParseSpeed(f.speed); err == nil {
				cfg.Speed = s
			}
		case "seed":
			cfg.Seed = f.seed
		case "scores":
			cfg.ScoreFile = f.scores
		case "keymap":
			cfg.KeymapFile = f.keymap
		case "no-audio":
			cfg.Audio = !f.noAudio
		case "no-save":
			cfg.NoSave = f.noSave
		case "debug":
			cfg.Debug = f.debug
		}
	})
	if err != nil {
		return cfg, fmt.Errorf("flag: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flag: %w", err)
	}
	return cfg, nil
}
