package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/pkg/session"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newManager(ttl time.Duration) (*session.Manager, *session.MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := session.NewMemoryStore().WithClock(clock.Now)
	return session.New("test_secret", ttl, store).WithClock(clock.Now), store, clock
}

func TestIssueAndResolve(t *testing.T) {
	m, store, _ := newManager(time.Hour)
	ctx := context.Background()
	uid := uuid.New()
	token, err := m.Issue(ctx, uid)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, store.Len())

	got, err := m.Resolve(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestResolveRejects(t *testing.T) {
	ctx := context.Background()
	t.Run("missing token", func(t *testing.T) {
		m, _, _ := newManager(time.Hour)
		_, err := m.Resolve(ctx, "")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
	t.Run("garbage token", func(t *testing.T) {
		m, _, _ := newManager(time.Hour)
		_, err := m.Resolve(ctx, "not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
	t.Run("foreign signature", func(t *testing.T) {
		m, _, clock := newManager(time.Hour)
		other := session.New("other_secret", time.Hour, session.NewMemoryStore()).WithClock(clock.Now)
		token, err := other.Issue(ctx, uuid.New())
		require.NoError(t, err)
		_, err = m.Resolve(ctx, token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
	t.Run("expired", func(t *testing.T) {
		m, _, clock := newManager(time.Hour)
		token, err := m.Issue(ctx, uuid.New())
		require.NoError(t, err)
		clock.now = clock.now.Add(2 * time.Hour)
		_, err = m.Resolve(ctx, token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
	t.Run("ended", func(t *testing.T) {
		m, store, _ := newManager(time.Hour)
		token, err := m.Issue(ctx, uuid.New())
		require.NoError(t, err)
		require.NoError(t, m.End(ctx, token))
		assert.Equal(t, 0, store.Len())
		_, err = m.Resolve(ctx, token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
}

func TestEndIsIdempotent(t *testing.T) {
	m, _, clock := newManager(time.Hour)
	ctx := context.Background()
	token, err := m.Issue(ctx, uuid.New())
	require.NoError(t, err)
	assert.NoError(t, m.End(ctx, token))
	assert.NoError(t, m.End(ctx, token))
	assert.NoError(t, m.End(ctx, ""))
	assert.NoError(t, m.End(ctx, "garbage"))

	// expired tokens can still be ended
	token, err = m.Issue(ctx, uuid.New())
	require.NoError(t, err)
	clock.now = clock.now.Add(48 * time.Hour)
	assert.NoError(t, m.End(ctx, token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := session.NewMemoryStore().WithClock(clock.Now)
	ctx := context.Background()
	uid := uuid.New()
	require.NoError(t, store.Save(ctx, "a", uid, time.Minute))

	got, err := store.Lookup(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, uid, got)

	clock.now = clock.now.Add(time.Minute)
	_, err = store.Lookup(ctx, "a")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestRedisStoreIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	store := session.NewRedisStoreWithClient(rdb)
	m := session.New("test_secret", time.Hour, store)
	uid := uuid.New()
	var token string
	t.Run("issued", func(t *testing.T) {
		token, err = m.Issue(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("resolved", func(t *testing.T) {
		got, err := m.Resolve(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, uid, got)
	})
	t.Run("ended", func(t *testing.T) {
		assert.NoError(t, m.End(ctx, token))
		_, err := m.Resolve(ctx, token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidSession)
	})
	t.Run("missing key", func(t *testing.T) {
		_, err := store.Lookup(ctx, "unknown")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}
