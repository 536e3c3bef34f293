package storage

import (
	"sync"
	"time"
)

type memKey struct {
	scope string
	key   string
}

// MemoryStore keeps everything in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[memKey]string
	profiles map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[memKey]string),
		profiles: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(scope, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[memKey{scope, key}]
	return value, ok, nil
}

func (s *MemoryStore) Set(scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[memKey{scope, key}] = value
	return nil
}

func (s *MemoryStore) Delete(scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, memKey{scope, key})
	return nil
}

func (s *MemoryStore) CreateProfile(id string, createdAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[id] = createdAt
	return nil
}

func (s *MemoryStore) ProfileExists(id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[id]
	return ok, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
