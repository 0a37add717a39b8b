package store

import (
	"context"
	"sync"

	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// Memory is a map-backed KV used by tests and ephemeral deployments.
// Values are copied on the way in and out so callers cannot alias the
// internal buffers.
type Memory struct {
	mu sync.RWMutex
	m  map[keys.Key][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[keys.Key][]byte)}
}

// Get implements KV.
func (s *Memory) Get(_ context.Context, key keys.Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements KV.
func (s *Memory) Set(_ context.Context, key keys.Key, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.m[key] = cp
	s.mu.Unlock()
	return nil
}

// Has implements KV.
func (s *Memory) Has(_ context.Context, key keys.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.m[key]
	return ok, nil
}

// Remove implements KV.
func (s *Memory) Remove(_ context.Context, key keys.Key) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

// Close implements KV. It is a no-op for the memory backend.
func (s *Memory) Close() error { return nil }
