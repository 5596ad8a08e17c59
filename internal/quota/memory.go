// internal/quota/memory.go
package quota

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for local mode and tests. Marks
// do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	used map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{used: make(map[string]bool)}
}

func (s *MemoryStore) Used(_ context.Context, clientID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used[clientID], nil
}

func (s *MemoryStore) MarkUsed(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used[clientID] = true
	return nil
}
