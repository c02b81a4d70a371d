package store

import (
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gofrs/flock"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/zerr"
)

// lockRetryDelay is the pause between two attempts to take a busy lock.
const lockRetryDelay = 25 * time.Millisecond

var errLockBusy = errors.New("lock held by another process")

// fileLock is an advisory inter-process lock on <cache>.lock.
type fileLock struct {
	lock    *flock.Flock
	timeout time.Duration
}

func newFileLock(path string, timeout time.Duration) *fileLock {
	return &fileLock{
		lock:    flock.New(path, flock.SetPermissions(domain.FilePerm)),
		timeout: timeout,
	}
}

// acquireShared takes the lock for reading.
func (l *fileLock) acquireShared() error {
	return l.acquire(l.lock.TryRLock)
}

// acquireExclusive takes the lock for writing.
func (l *fileLock) acquireExclusive() error {
	return l.acquire(l.lock.TryLock)
}

func (l *fileLock) acquire(try func() (bool, error)) error {
	attempts := uint(l.timeout/lockRetryDelay) + 1 //nolint:gosec // timeout is validated non-negative

	err := retry.Do(
		func() error {
			ok, err := try()
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if !ok {
				return errLockBusy
			}
			return nil
		},
		retry.Attempts(attempts),
		retry.Delay(lockRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if errors.Is(err, errLockBusy) {
		return zerr.With(zerr.With(domain.ErrStoreLocked, "path", l.lock.Path()), "timeout", l.timeout.String())
	}
	return zerr.With(zerr.Wrap(err, "failed to acquire cache lock"), "path", l.lock.Path())
}

func (l *fileLock) release() error {
	if err := l.lock.Unlock(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to release cache lock"), "path", l.lock.Path())
	}
	return nil
}
