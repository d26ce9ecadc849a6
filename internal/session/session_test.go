package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
	"spaceBooker/internal/wizard/mocks"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()

	backend := mocks.NewBackend(t)
	backend.On("Destinations", mock.Anything).
		Return([]models.Destination{{ID: 1, Name: "Lunar Gateway Station"}}, models.OriginLive, nil).
		Maybe()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(slogdiscard.NewDiscardLogger(), backend, ttl)
	s.now = func() time.Time { return now }

	return s, &now
}

func TestStartAndGet(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, time.Minute)

	w, err := s.Start(context.Background(), 42)
	require.NoError(t, err)

	sess := w.Session()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int64(42), sess.UserID)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, w, got)

	state := got.Snapshot()
	require.Len(t, state.Destinations, 1)
	assert.Equal(t, int64(42), state.UserID)
}

func TestStartFailure(t *testing.T) {
	t.Parallel()

	backend := mocks.NewBackend(t)
	backend.On("Destinations", mock.Anything).Return(nil, models.Origin(""), errors.New("unreachable"))

	s := New(slogdiscard.NewDiscardLogger(), backend, time.Minute)

	_, err := s.Start(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, time.Minute)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t, time.Minute)

	a, err := s.Start(context.Background(), 1)
	require.NoError(t, err)
	b, err := s.Start(context.Background(), 2)
	require.NoError(t, err)

	*now = now.Add(45 * time.Second)
	_, err = s.Get(b.Session().ID)
	require.NoError(t, err, "access refreshes the session")

	*now = now.Add(30 * time.Second)

	assert.Equal(t, 1, s.PurgeExpired())
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(a.Session().ID)
	assert.ErrorIs(t, err, ErrNotFound)

	*now = now.Add(2 * time.Minute)
	_, err = s.Get(b.Session().ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, 0)

	w, err := s.Start(context.Background(), 1)
	require.NoError(t, err)

	s.Delete(w.Session().ID)

	_, err = s.Get(w.Session().ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
