package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// inMemory implements KVStore using an in-memory map. Values are kept as
// marshaled JSON so Get/Set semantics match the database-backed store.
type inMemory struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewInMemoryStore creates a new instance of KVStore
func NewInMemoryStore() KVStore {
	return &inMemory{
		values: make(map[string]json.RawMessage),
	}
}

func (s *inMemory) Get(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value for key %q: %w", key, err)
	}
	return nil
}

func (s *inMemory) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return nil
}
