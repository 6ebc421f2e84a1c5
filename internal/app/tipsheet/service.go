// Package tipsheet (app layer) coordinates snapshot access for handlers and
// the poller.
package tipsheet

import "afl-tipping-service/internal/domain"

// Store defines the contract for holding the current tip-sheet snapshot.
type Store interface {
	Snapshot() domain.Snapshot
	SetSnapshot(domain.Snapshot)
}

// Service coordinates tip-sheet operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the current tip-sheet snapshot.
func (s *Service) Snapshot() domain.Snapshot {
	return s.store.Snapshot()
}

// Rows returns the current combined rows.
func (s *Service) Rows() []domain.Row {
	return s.store.Snapshot().Rows
}

// Teams returns the current team list.
func (s *Service) Teams() []domain.Team {
	return s.store.Snapshot().Teams
}

// Replace swaps in the snapshot produced by a refresh cycle.
func (s *Service) Replace(snap domain.Snapshot) {
	s.store.SetSnapshot(snap)
}
