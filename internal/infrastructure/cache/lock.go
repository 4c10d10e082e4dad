package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned when a lock stays held past the wait budget
var ErrLockNotAcquired = errors.New("lock not acquired")

const lockPollInterval = 25 * time.Millisecond

// ReleaseFunc releases a held lock. Releasing after expiry is a no-op.
type ReleaseFunc func(ctx context.Context) error

// pollAcquire retries try until it succeeds, wait elapses or ctx ends
func pollAcquire(ctx context.Context, wait time.Duration, try func(ctx context.Context) (bool, error)) error {
	deadline := time.Now().Add(wait)
	for {
		ok, err := try(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return ErrLockNotAcquired
		}

		timer := time.NewTimer(lockPollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// MemoryLocker is a process-local lock built on MemoryStore
type MemoryLocker struct {
	store *MemoryStore
	wait  time.Duration
}

// NewMemoryLocker creates a locker that waits up to wait for a held key
func NewMemoryLocker(store *MemoryStore, wait time.Duration) *MemoryLocker {
	return &MemoryLocker{store: store, wait: wait}
}

// Acquire takes key for at most ttl
func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	token := uuid.NewString()
	err := pollAcquire(ctx, l.wait, func(context.Context) (bool, error) {
		return l.store.SetNX(key, token, ttl), nil
	})
	if err != nil {
		return nil, err
	}
	return func(context.Context) error {
		l.store.CompareAndDelete(key, token)
		return nil
	}, nil
}

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a lock shared by every API instance using one Redis
type RedisLocker struct {
	client redis.UniversalClient
	wait   time.Duration
}

// NewRedisLocker creates a locker that waits up to wait for a held key
func NewRedisLocker(client redis.UniversalClient, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, wait: wait}
}

// Acquire takes key for at most ttl using SET NX PX
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	token := uuid.NewString()
	err := pollAcquire(ctx, l.wait, func(ctx context.Context) (bool, error) {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return false, fmt.Errorf("failed to set lock %s: %w", key, err)
		}
		return ok, nil
	})
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
