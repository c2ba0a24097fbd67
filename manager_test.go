package apppass

import (
	"sync"
	"testing"
)

// fakeStore is a map-backed Store for exercising the manager without
// an OS credential service. failures injects per-key errors.
type fakeStore struct {
	mu       sync.Mutex
	data     map[string]string
	failures map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:     make(map[string]string),
		failures: make(map[string]error),
	}
}

func (s *fakeStore) String() string {
	return "fake"
}

func (s *fakeStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failures[key]; ok {
		return err
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failures[key]; ok {
		return "", err
	}
	value, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *fakeStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failures[key]; ok {
		return err
	}
	if _, ok := s.data[key]; !ok {
		return ErrNotFound
	}
	delete(s.data, key)
	return nil
}

// raw returns the stored value bypassing the manager, or "" when
// absent.
func (s *fakeStore) raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok
}

// put seeds a record bypassing the manager.
func (s *fakeStore) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *fakeStore) failWith(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = err
}

func newTestManager(t *testing.T) (*Manager, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewManager(store), store
}
