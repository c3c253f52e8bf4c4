package memory

import (
	"sync"

	"github.com/google/uuid"
)

// NewSessionID generates session identifiers. Tests may replace it.
var NewSessionID = func() string { return uuid.New().String() }

// Sessions keeps independent memory spaces keyed by session id.
type Sessions struct {
	mu     sync.RWMutex
	spaces map[string]*Allocator
}

func NewSessions() *Sessions {
	return &Sessions{spaces: make(map[string]*Allocator)}
}

// Create opens a new memory space of capacity units.
func (s *Sessions) Create(capacity int) (string, *Allocator, error) {
	allocator, err := New(capacity)
	if err != nil {
		return "", nil, err
	}
	id := NewSessionID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[id] = allocator
	return id, allocator, nil
}

func (s *Sessions) Get(id string) (*Allocator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	allocator, ok := s.spaces[id]
	return allocator, ok
}

// Delete drops a session. It reports whether the session existed.
func (s *Sessions) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.spaces[id]
	delete(s.spaces, id)
	return ok
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spaces)
}
