package session

import (
	"context"
	"sync"
	"time"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/session"
)

type entry struct {
	s    *domain.Session
	used time.Time
}

// MemoryStore keeps view sessions in process memory. Readers always get a
// copy, so a session is only changed through Update.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[domain.ID]*entry
	// ttl drops sessions unused for that long; zero keeps them forever.
	ttl time.Duration
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[domain.ID]*entry), now: time.Now}
}

// NewExpiringMemoryStore forgets sessions idle for longer than ttl. A janitor
// sweeps them until ctx is done.
func NewExpiringMemoryStore(ctx context.Context, ttl time.Duration) *MemoryStore {
	m := NewMemoryStore()
	m.ttl = ttl
	if ttl > 0 {
		go m.cleanup(ctx, ttl/2)
	}
	return m
}

// expired never holds for a busy session: its owner is waiting on a reply.
func (m *MemoryStore) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && !e.s.Busy && now.Sub(e.used) > m.ttl
}

func (m *MemoryStore) Create(ctx context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{s: s.Clone(), used: m.now()}
	return nil
}

// lookup returns the caller's live entry; m.mu must be held for writing.
func (m *MemoryStore) lookup(userID string, id domain.ID) (*entry, error) {
	e, ok := m.sessions[id]
	if !ok || e.s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	now := m.now()
	if m.expired(e, now) {
		delete(m.sessions, id)
		return nil, domain.ErrNotFound
	}
	e.used = now
	return e, nil
}

func (m *MemoryStore) Get(ctx context.Context, userID string, id domain.ID) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(userID, id)
	if err != nil {
		return nil, err
	}
	return e.s.Clone(), nil
}

// Update applies fn to a copy and stores it only when fn succeeds.
// fn must not block: it runs under the store lock.
func (m *MemoryStore) Update(ctx context.Context, userID string, id domain.ID, fn func(*domain.Session) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(userID, id)
	if err != nil {
		return nil, err
	}
	next := e.s.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	e.s = next
	return next.Clone(), nil
}

// Len reports how many sessions are held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(m.now())
		}
	}
}

func (m *MemoryStore) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
}
