package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600

	// lockWait bounds how long a command waits for another chk process to
	// release the state file.
	lockWait = 2 * time.Second
	lockPoll = 10 * time.Millisecond
)

var errLockTimeout = errors.New("state file is locked by another chk process")

// withLock runs fn while holding the lock of the state file at path.
func withLock(path string, fn func() error) error {
	unlock, err := lockState(path, lockWait)
	if err != nil {
		return err
	}

	defer unlock()

	return fn()
}

// lockState takes an exclusive flock on <dir>/.locks/<file>.lock, polling
// until wait runs out. The lock file is removed on unlock, so a holder must
// check that the inode it locked is still the one at the path.
func lockState(path string, wait time.Duration) (func(), error) {
	dir := filepath.Join(filepath.Dir(path), ".locks")
	lockPath := filepath.Join(dir, filepath.Base(path)+".lock")

	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return nil, fmt.Errorf("creating lock dir: %w", err)
	}

	deadline := time.Now().Add(wait)

	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerms)
		if err != nil {
			return nil, fmt.Errorf("opening lock file: %w", err)
		}

		fd := int(f.Fd())

		err = unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil && sameInode(f, lockPath) {
			return func() {
				_ = os.Remove(lockPath)
				_ = unix.Flock(fd, unix.LOCK_UN)
				_ = f.Close()
			}, nil
		}

		if err == nil {
			_ = unix.Flock(fd, unix.LOCK_UN)
		}

		_ = f.Close()

		if err != nil && !errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("locking %s: %w", path, err)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", errLockTimeout, path)
		}

		time.Sleep(lockPoll)
	}
}

func sameInode(f *os.File, path string) bool {
	held, err := f.Stat()
	if err != nil {
		return false
	}

	current, err := os.Stat(path)
	if err != nil {
		return false
	}

	return os.SameFile(held, current)
}
