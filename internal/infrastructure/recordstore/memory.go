package recordstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]json.RawMessage)}
}

func (s *MemoryStore) Get(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.collections[collection]), nil
}

func (s *MemoryStore) Put(_ context.Context, collection string, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = cloneRecords(records)
	return nil
}
