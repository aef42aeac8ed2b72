package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists console sessions. The memory store serves development;
// production uses Redis so sessions survive restarts and are shared
// across replicas.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in memory with periodic cleanup of expired
// entries. Thread-safe for concurrent access.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	done     chan struct{}
}

// NewMemoryStore creates a store and starts a background goroutine that
// drops expired sessions every 5 minutes.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok || s.Expired() {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *s
	m.sessions[s.ID] = &copied
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, s := range m.sessions {
		if !s.Expired() {
			n++
		}
	}
	return n
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() {
	close(m.done)
}

func (m *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.Expired() {
			delete(m.sessions, id)
		}
	}
}
