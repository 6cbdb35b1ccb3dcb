package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryKV is the fallback driver when neither Postgres nor Redis is
// configured. Single-process only; also what the unit tests run against.
type memoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() KV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (s *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *memoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *memoryKV) ListByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		out := make([]byte, len(s.data[k]))
		copy(out, s.data[k])
		values = append(values, out)
	}
	return values, nil
}
