// Package usercache memoizes the full users list for a short TTL so
// the aggregation endpoints do not re-read the users table on every
// request. Expiry is a clock check on read, not a timer, which keeps
// the behavior deterministic under test.
package usercache

import (
	"context"
	"sync"
	"time"

	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
)

// Clock abstracts time.Now for tests.
type Clock func() time.Time

type Cache struct {
	repo user.UserRepository
	ttl  time.Duration
	now  Clock

	mu         sync.RWMutex
	entries    map[string]user.User
	ordered    []user.User
	validUntil time.Time
}

func New(repo user.UserRepository, ttl time.Duration, now Clock) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		repo: repo,
		ttl:  ttl,
		now:  now,
	}
}

// List returns the cached users list, refetching when the entry has
// expired. Concurrent refetches after expiry are tolerated: population
// is a deterministic re-read, last write wins.
func (c *Cache) List(ctx context.Context) ([]user.User, error) {
	c.mu.RLock()
	if c.entries != nil && c.now().Before(c.validUntil) {
		users := c.ordered
		c.mu.RUnlock()
		return users, nil
	}
	c.mu.RUnlock()

	users, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]user.User, len(users))
	for _, u := range users {
		entries[u.ID] = u
	}

	c.mu.Lock()
	c.entries = entries
	c.ordered = users
	c.validUntil = c.now().Add(c.ttl)
	c.mu.Unlock()

	return users, nil
}

// Get looks a single user up through the cache.
func (c *Cache) Get(ctx context.Context, id string) (user.User, error) {
	if _, err := c.List(ctx); err != nil {
		return user.User{}, err
	}

	c.mu.RLock()
	u, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Invalidate drops the cached list; the next read repopulates it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.ordered = nil
	c.validUntil = time.Time{}
	c.mu.Unlock()
}
