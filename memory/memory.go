package memory

import (
	"sync"

	"github.com/apppass/apppass"
)

const (
	// Name of the store backend
	Name = "memory"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// New returns an empty in-process store. Contents die with the
// process; it backs tests and ephemeral runs.
func New(
	storeConfig map[string]interface{},
) (apppass.Store, error) {
	return &memoryStore{
		data: make(map[string]string),
	}, nil
}

func (s *memoryStore) String() string {
	return Name
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return "", apppass.ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return apppass.ErrNotFound
	}
	delete(s.data, key)
	return nil
}

func init() {
	if err := apppass.Register(Name, New); err != nil {
		panic(err.Error())
	}
}
