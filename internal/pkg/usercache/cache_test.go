package usercache

import (
	"context"
	"testing"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users []user.User
	calls int
}

func (s *stubUserRepo) List(ctx context.Context) ([]user.User, error) {
	s.calls++
	return s.users, nil
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id string) error   { return nil }

func TestCacheServesWithinTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	repo := &stubUserRepo{users: []user.User{{ID: "u1"}, {ID: "u2"}}}
	cache := New(repo, 5*time.Minute, clock)

	first, err := cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, repo.calls)

	// within TTL: no refetch
	now = now.Add(4 * time.Minute)
	_, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestCacheExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	repo := &stubUserRepo{users: []user.User{{ID: "u1"}}}
	cache := New(repo, 5*time.Minute, clock)

	_, err := cache.List(ctx)
	require.NoError(t, err)

	now = now.Add(5*time.Minute + time.Second)
	_, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestCacheGetAndInvalidate(t *testing.T) {
	ctx := context.Background()
	repo := &stubUserRepo{users: []user.User{{ID: "u1"}}}
	cache := New(repo, 5*time.Minute, nil)

	got, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	cache.Invalidate()
	_, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
