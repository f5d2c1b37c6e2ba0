// Package memory provides process-local implementations of the outbound
// ports. They back unit tests and single-node deployments where no external
// store is configured.
package memory

import (
	"context"
	"sync"
)

// KeyValueStore is an in-process whole-value store. Safe for concurrent use.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKeyValueStore creates an empty in-memory key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value stored under key.
func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set replaces the whole value stored under key.
func (s *KeyValueStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
