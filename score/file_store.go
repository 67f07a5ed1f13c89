package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore persists values in a TOML document:
//
//	[scores]
//	snakeHighScore = 120
//
// Writes replace the file atomically through a temp file in the same directory
type FileStore struct {
	path string
	mu   sync.Mutex
}

type document struct {
	Scores map[string]int `toml:"scores"`
}

// NewFileStore creates a store backed by path; the file is created on first save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (f *FileStore) Path() string {
	return f.path
}

// DefaultPath returns $XDG_STATE_HOME/snake/scores.toml, falling back to ~/.local/state
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve state dir: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "snake", "scores.toml"), nil
}

func (f *FileStore) Load(key string) (int, error) {
	if key == "" {
		return 0, ErrInvalidKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return 0, err
	}
	return doc.Scores[key], nil
}

func (f *FileStore) Save(key string, value int) error {
	if key == "" {
		return ErrInvalidKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	if doc.Scores == nil {
		doc.Scores = make(map[string]int)
	}
	doc.Scores[key] = value

	return f.write(doc)
}

// read returns an empty document when the file does not exist yet
func (f *FileStore) read() (document, error) {
	var doc document

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read scores %s: %w", f.path, err)
	}

	if _, err := toml.Decode(string(data), &doc); err != nil {
		return doc, fmt.Errorf("parse scores %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *FileStore) write(doc document) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.toml")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace score file: %w", err)
	}
	return nil
}
