// Package session keeps the booking wizards of active browsing sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"spaceBooker/internal/wizard"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	wizard   *wizard.Wizard
	lastSeen time.Time
}

type Store struct {
	mu      sync.Mutex
	log     *slog.Logger
	backend wizard.Backend
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

// New creates a store whose sessions expire after ttl without access.
// A non-positive ttl keeps sessions until they are deleted.
func New(log *slog.Logger, backend wizard.Backend, ttl time.Duration) *Store {
	return &Store{
		log:     log.With(slog.String("component", "session")),
		backend: backend,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Start opens a session for userID and loads the destination catalog into its wizard.
func (s *Store) Start(ctx context.Context, userID int64) (*wizard.Wizard, error) {
	const op = "session.Start"

	sess := wizard.Session{
		ID:     uuid.New().String(),
		UserID: userID,
	}

	w := wizard.New(s.log, s.backend, sess, s.now())

	if err := w.LoadDestinations(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.entries[sess.ID] = &entry{wizard: w, lastSeen: s.now()}
	s.mu.Unlock()

	s.log.Info("session started", slog.String("session_id", sess.ID), slog.Int64("user_id", userID))

	return w, nil
}

func (s *Store) Get(id string) (*wizard.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}

	e.lastSeen = now

	return e.wizard, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// PurgeExpired drops idle sessions and returns how many were removed.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0

	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			n++
		}
	}

	if n > 0 {
		s.log.Info("purged expired sessions", slog.Int("count", n))
	}

	return n
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
