package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockSuffix        = ".lock"
	lockRetryInterval = 50 * time.Millisecond
	lockWaitTimeout   = 2 * time.Second
)

// cacheLock guards the cache files against a second client process.
type cacheLock struct {
	flock *flock.Flock
}

// acquireCacheLock takes the exclusive lock next to dsn, waiting at most
// lockWaitTimeout. It fails with [ErrCacheLocked] when another process keeps
// holding it.
func acquireCacheLock(ctx context.Context, dsn string) (*cacheLock, error) {
	if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	l := &cacheLock{flock: flock.New(dsn + lockSuffix)}

	ctx, cancel := context.WithTimeout(ctx, lockWaitTimeout)
	defer cancel()

	locked, err := l.flock.TryLockContext(ctx, lockRetryInterval)
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, ErrCacheLocked
	}

	return l, nil
}

func (l *cacheLock) Release() error {
	return l.flock.Unlock()
}
