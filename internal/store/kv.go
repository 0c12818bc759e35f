// Package store contains the persistence layer for trip-planning state:
// a string-keyed JSON key-value store with a typed repository on top.
// No business logic lives here — only serialization and key management.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// KV is the minimal key-value contract the trip store needs. Semantics are
// last-writer-wins; there are no transactions and no cross-writer
// coordination (single-session assumption).
type KV interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound when the key has never been set.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process KV implementation. It is the default backend when
// no Redis address is configured, and the backend used by unit tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value so callers cannot mutate the map's
// backing array.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("store.Memory.Get %q: %w", key, domain.ErrNotFound)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete removes key from the map.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
