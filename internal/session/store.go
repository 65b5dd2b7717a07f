// Package session persists in-progress booking sessions between chat
// requests, keyed by session ID.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session: not found")

// Store loads and saves booking sessions.
type Store interface {
	Get(ctx context.Context, id string) (*booking.Session, error)
	Save(ctx context.Context, s *booking.Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session  booking.Session
	deadline time.Time
}

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance; use the Redis store when running more than one.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an in-memory store. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*booking.Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && m.now().After(entry.deadline) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	s := entry.session
	s.Answers = make(booking.Answers, len(entry.session.Answers))
	for k, v := range entry.session.Answers {
		s.Answers[k] = v
	}
	return &s, nil
}

// Save stores a copy of the session and refreshes its expiry.
func (m *MemoryStore) Save(_ context.Context, s *booking.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session: session with ID required")
	}
	cp := *s
	cp.Answers = make(booking.Answers, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	m.mu.Lock()
	m.sessions[s.ID] = memoryEntry{session: cp, deadline: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
