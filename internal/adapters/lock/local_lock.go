package lock

import (
	"context"
	"sync"
	"time"
)

// In-process implementation of the RunLock port, for single-instance
// deployments and one-shot CSV runs where the only competing triggers
// live in this process.
type LocalRunLock struct {
	mu sync.Mutex
}

func NewLocalRunLock() *LocalRunLock {
	return &LocalRunLock{}
}

func (l *LocalRunLock) TryAcquire(ctx context.Context, wait time.Duration) (bool, error) {
	deadline := time.Now().Add(wait)

	for {
		if l.mu.TryLock() {
			return true, nil
		}

		if time.Now().After(deadline) {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (l *LocalRunLock) Release(ctx context.Context) error {
	l.mu.Unlock()
	return nil
}
