package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/store"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore() (*SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewSessionStore(logger.Discard()).WithClock(clock.Now), clock
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestStore()

	rec := &store.SessionRecord{ID: uuid.New(), State: session.State{Mode: domain.ModeRevision}}
	require.NoError(t, s.Create(ctx, rec))
	assert.Equal(t, clock.Now(), rec.CreatedAt)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRevision, got.State.Mode)

	assert.ErrorIs(t, s.Create(ctx, rec), store.ErrSessionExists)
	assert.ErrorIs(t, s.Create(ctx, &store.SessionRecord{}), store.ErrInvalidEntity)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestModify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestStore()

	id := uuid.New()
	require.NoError(t, s.Create(ctx, &store.SessionRecord{ID: id}))
	clock.Advance(time.Minute)

	rec, err := s.Modify(ctx, id, func(cur session.State) (session.State, error) {
		cur.Revealed = true
		return cur, nil
	})
	require.NoError(t, err)
	assert.True(t, rec.State.Revealed)
	assert.Equal(t, clock.Now(), rec.UpdatedAt)

	boom := errors.New("boom")
	rec, err = s.Modify(ctx, id, func(cur session.State) (session.State, error) {
		cur.Revealed = false
		return cur, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, rec.State.Revealed, "failed modification keeps the stored state")

	_, err = s.Modify(ctx, uuid.New(), func(cur session.State) (session.State, error) { return cur, nil })
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestModifyIsAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestStore()

	id := uuid.New()
	require.NoError(t, s.Create(ctx, &store.SessionRecord{ID: id}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Modify(ctx, id, func(cur session.State) (session.State, error) {
				cur.Cursor++
				return cur, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.State.Cursor)
}

func TestDeleteIdleSince(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestStore()

	stale := uuid.New()
	require.NoError(t, s.Create(ctx, &store.SessionRecord{ID: stale}))
	clock.Advance(time.Hour)
	fresh := uuid.New()
	require.NoError(t, s.Create(ctx, &store.SessionRecord{ID: fresh}))

	removed, err := s.DeleteIdleSince(ctx, clock.Now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = s.Get(ctx, stale)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
	_, err = s.Get(ctx, fresh)
	assert.NoError(t, err)
	n, _ := s.Count(ctx)
	assert.Equal(t, 1, n)
}
