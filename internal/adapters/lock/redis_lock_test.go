package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestLock(t *testing.T, mr *miniredis.Miniredis, ttl time.Duration) *RedisRunLock {
	t.Helper()
	l, err := NewRedisRunLock("redis://"+mr.Addr(), "allocation:run-lock", ttl)
	if err != nil {
		t.Fatalf("new redis lock: %v", err)
	}
	return l
}

func TestRedisRunLockExcludes(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first := newTestLock(t, mr, time.Minute)
	second := newTestLock(t, mr, time.Minute)

	ok, err := first.TryAcquire(ctx, 0)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	ok, err = second.TryAcquire(ctx, 0)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if ok {
		t.Fatal("second acquire succeeded while lock held")
	}

	if err := first.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}

	ok, err = second.TryAcquire(ctx, 0)
	if err != nil || !ok {
		t.Fatalf("acquire after release: ok=%v err=%v", ok, err)
	}
}

func TestRedisRunLockExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first := newTestLock(t, mr, time.Second)
	second := newTestLock(t, mr, time.Second)

	if ok, err := first.TryAcquire(ctx, 0); err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	// A crashed holder never releases; the TTL frees the lock.
	mr.FastForward(2 * time.Second)

	if ok, err := second.TryAcquire(ctx, 0); err != nil || !ok {
		t.Fatalf("acquire after expiry: ok=%v err=%v", ok, err)
	}
}

func TestRedisRunLockReleaseKeepsForeignToken(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	first := newTestLock(t, mr, time.Second)
	second := newTestLock(t, mr, time.Minute)

	if ok, err := first.TryAcquire(ctx, 0); err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	// First holder's TTL lapses and another run takes the lock.
	mr.FastForward(2 * time.Second)
	if ok, err := second.TryAcquire(ctx, 0); err != nil || !ok {
		t.Fatalf("second acquire: ok=%v err=%v", ok, err)
	}

	// The stale holder's release must not free the new holder's lock.
	if err := first.Release(ctx); err != nil {
		t.Fatalf("stale release: %v", err)
	}

	third := newTestLock(t, mr, time.Minute)
	if ok, err := third.TryAcquire(ctx, 0); err != nil {
		t.Fatalf("third acquire: %v", err)
	} else if ok {
		t.Fatal("stale release deleted a foreign token")
	}
}
