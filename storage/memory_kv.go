package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryKeyValueStorage is a process-local KeyValueStorage. Its contents are
// gone once the value is dropped.
type MemoryKeyValueStorage struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryKeyValueStorage() *MemoryKeyValueStorage {
	return &MemoryKeyValueStorage{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

func (s *MemoryKeyValueStorage) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	e.Value = append([]byte(nil), e.Value...)
	return &e, nil
}

func (s *MemoryKeyValueStorage) Put(_ context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.entries[key]
	if expectedVersion >= 0 {
		if (expectedVersion == 0 && exists) || (expectedVersion > 0 && current.Version != expectedVersion) {
			return 0, ErrVersionConflict
		}
	}

	next := current.Version + 1
	s.entries[key] = Entry{
		Key:       key,
		Value:     append([]byte(nil), value...),
		Version:   next,
		UpdatedAt: s.now().UTC(),
	}
	return next, nil
}

func (s *MemoryKeyValueStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryKeyValueStorage) List(_ context.Context, prefix string) ([]string, error) {
	return s.keys(prefix), nil
}

// Keys lists the stored keys in order.
func (s *MemoryKeyValueStorage) Keys() []string {
	return s.keys("")
}

func (s *MemoryKeyValueStorage) keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Reset drops every entry.
func (s *MemoryKeyValueStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}
