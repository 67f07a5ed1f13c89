package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/parameter"
)

// Config is the user-facing configuration, loaded from TOML and overridden by flags
type Config struct {
	GridSize   int          `toml:"grid_size"`
	CellSize   int          `toml:"cell_size"`
	Speed      engine.Speed `toml:"speed"`
	ScoreFile  string       `toml:"score_file"`  // Empty selects the default state path
	KeymapFile string       `toml:"keymap_file"` // Empty uses the built-in bindings
	Audio      bool         `toml:"audio"`
	Seed       uint64       `toml:"seed"` // 0 seeds from the clock
	NoSave     bool         `toml:"no_save"`
	Debug      bool         `toml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		GridSize: parameter.CanvasSize / parameter.CellSize,
		CellSize: parameter.CellSize,
		Speed:    engine.DefaultSpeed,
		Audio:    true,
	}
}

// Load reads path over the defaults
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges; all violations are reported together
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < parameter.MinGridSize || c.GridSize > parameter.MaxGridSize {
		errs = append(errs, fmt.Errorf("grid_size %d out of range [%d, %d]",
			c.GridSize, parameter.MinGridSize, parameter.MaxGridSize))
	}
	if c.CellSize < parameter.MinCellSize || c.CellSize > parameter.MaxCellSize {
		errs = append(errs, fmt.Errorf("cell_size %d out of range [%d, %d]",
			c.CellSize, parameter.MinCellSize, parameter.MaxCellSize))
	}
	if !c.Speed.Valid() {
		errs = append(errs, fmt.Errorf("speed %d is not a known setting", c.Speed))
	}
	return errors.Join(errs...)
}

// CanvasPixels returns the side of the square canvas in pixels
func (c Config) CanvasPixels() int {
	return c.GridSize * c.CellSize
}
