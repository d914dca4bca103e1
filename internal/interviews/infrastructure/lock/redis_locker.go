// Package lock provides the Redis advisory lock for scheduling.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned when another scheduling attempt holds the lock.
var ErrLockHeld = errors.New("scheduling lock is held by another attempt")

// unlockScript releases the lock only if the caller still owns it.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLocker implements an advisory lock with SET NX and a TTL.
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker creates a Redis-backed advisory locker.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// Acquire takes the lock for key with the given TTL. The returned release
// function deletes the lock only when this caller still owns it, so an
// expired-and-reacquired lock is never released by a stale holder.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockHeld
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.client.Eval(releaseCtx, unlockScript, []string{key}, token).Err()
	}
	return release, nil
}
