package store

import (
	"sync"

	"afl-tipping-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the current tip sheet in
// memory. Each refresh cycle replaces the snapshot wholesale; nothing
// persists across restarts.
type MemoryStore struct {
	mu   sync.RWMutex
	snap domain.Snapshot
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot returns the current snapshot with a copied row slice so callers
// can filter freely.
func (s *MemoryStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.Rows = append([]domain.Row(nil), s.snap.Rows...)
	snap.Teams = append([]domain.Team(nil), s.snap.Teams...)
	return snap
}

// SetSnapshot replaces the current snapshot.
func (s *MemoryStore) SetSnapshot(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
