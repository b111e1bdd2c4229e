package match

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory registry of live matches keyed by match ID.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]*Match
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{matches: make(map[uuid.UUID]*Match)}
}

// Add registers a match under its ID, replacing any previous entry.
func (s *Store) Add(m *Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
}

// Get looks up a match by ID.
func (s *Store) Get(id uuid.UUID) (*Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok
}

// Remove drops a match from the registry.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}

// Len reports the number of registered matches.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}
