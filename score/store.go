package score

import (
	"errors"
	"sync"
)

// ErrInvalidKey is returned for an empty store key
var ErrInvalidKey = errors.New("score: empty key")

// Store is a durable string-keyed integer store
// A missing key loads as zero without error
type Store interface {
	Load(key string) (int, error)
	Save(key string, value int) error
}

// MemoryStore keeps values for the lifetime of the process
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) Load(key string) (int, error) {
	if key == "" {
		return 0, ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryStore) Save(key string, value int) error {
	if key == "" {
		return ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
