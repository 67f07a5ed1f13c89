package score

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/parameter"
)

// Keeper is the best-effort high score bridge between a game and a Store
// Store failures are logged and never reach the caller
type Keeper struct {
	store  Store
	key    string
	logger zerolog.Logger
}

// NewKeeper binds a store key; an empty logger value discards output
func NewKeeper(store Store, key string, logger zerolog.Logger) *Keeper {
	return &Keeper{
		store:  store,
		key:    key,
		logger: logger.With().Str("component", "score").Str("key", key).Logger(),
	}
}

// LoadHighScore returns the stored best, or 0 when it cannot be read
func (k *Keeper) LoadHighScore() int {
	v, err := k.store.Load(k.key)
	if err != nil {
		k.logger.Warn().Err(err).Msg("High score unavailable")
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// SaveHighScoreIfHigher writes score when it beats the stored best
// Returns the best known to the store and whether score was written
func (k *Keeper) SaveHighScoreIfHigher(score int) (int, bool) {
	stored := k.LoadHighScore()
	if score <= stored {
		return stored, false
	}

	if err := k.store.Save(k.key, score); err != nil {
		k.logger.Error().Err(err).Int("score", score).Msg("High score not saved")
		return stored, false
	}

	k.logger.Info().Int("score", score).Int("previous", stored).Msg("High score saved")
	return score, true
}

// OpenKeeper selects the high score store
// noSave keeps scores in memory for the process; an empty path selects DefaultPath
func OpenKeeper(path string, noSave bool, logger zerolog.Logger) (*Keeper, error) {
	if noSave {
		return NewKeeper(NewMemoryStore(), parameter.HighScoreKey, logger), nil
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	logger.Debug().Str("path", path).Msg("Score file")
	return NewKeeper(NewFileStore(path), parameter.HighScoreKey, logger), nil
}
