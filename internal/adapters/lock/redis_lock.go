package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

const pollInterval = 100 * time.Millisecond

// Redis-backed implementation of the RunLock port, for deployments
// where several service instances share one roster store. The lock is
// a single key set NX with a TTL, so a crashed holder frees it after
// TTL instead of wedging every future run.
type RedisRunLock struct {
	rdb   *redis.Client
	key   string
	ttl   time.Duration
	token string
}

// NewRedisRunLock connects using a REDIS_URL-style connection string.
func NewRedisRunLock(url, key string, ttl time.Duration) (*RedisRunLock, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis run lock: parse url: %w", err)
	}

	return &RedisRunLock{rdb: redis.NewClient(opt), key: key, ttl: ttl}, nil
}

// TryAcquire polls SET NX until it wins or wait elapses. Returns false
// without error when the lock stays held; the caller aborts the run.
func (l *RedisRunLock) TryAcquire(ctx context.Context, wait time.Duration) (bool, error) {
	token := uuid.New().String()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return false, fmt.Errorf("redis run lock: acquire: %w", err)
		}
		if ok {
			l.token = token
			return true, nil
		}

		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, fmt.Errorf("redis run lock: acquire: %w", ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

// Release deletes the lock key only while it still carries this
// holder's token. If the TTL expired and another run took the lock,
// the foreign token is left alone.
func (l *RedisRunLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	token := l.token
	l.token = ""

	val, err := l.rdb.Get(ctx, l.key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis run lock: release: read token: %w", err)
	}
	if val != token {
		return nil
	}

	if err := l.rdb.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("redis run lock: release: delete key: %w", err)
	}

	return nil
}
