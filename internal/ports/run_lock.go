package ports

import (
	"context"
	"time"
)

// Port: mutual exclusion for allocation runs against a shared
// destination. The lock is advisory: callers must acquire before
// reading input and release on every exit path. A failed acquire
// means another run is in flight; the caller aborts and reports,
// it never queues.
type RunLock interface {
	// Attempt to take the lock, retrying until wait elapses.
	// Returns false (not an error) when the lock is held elsewhere.
	TryAcquire(ctx context.Context, wait time.Duration) (bool, error)

	// Give the lock back. Safe to call when the lock was lost
	// (e.g. expired); only this holder's acquisition is removed.
	Release(ctx context.Context) error
}
