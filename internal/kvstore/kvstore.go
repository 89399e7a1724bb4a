// Package kvstore persists small JSON documents by key. It stands in for the
// browser's local storage: the product catalogue and the insight credential
// live here so they survive a restart.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get decodes the value stored under key into out. It returns ErrNotFound
	// when the key was never written.
	Get(ctx context.Context, key string, out interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// Memory keeps values for the lifetime of the process only.
type Memory struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(_ context.Context, key string, out interface{}) error {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (m *Memory) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}
