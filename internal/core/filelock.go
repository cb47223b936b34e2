package core

import (
	"fmt"
	"os"
	"syscall"
)

// lockFile acquires an exclusive advisory lock (LOCK_EX) on the file at path,
// creating it with owner-only permissions if it does not exist. It blocks
// until any other holder releases the lock. SaveConfig holds it around the
// write so two `config add` runs cannot interleave.
//
// The returned unlock function releases the lock and closes the file; it must
// be called exactly once.
func lockFile(path string) (unlock func() error, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file %s: %w", path, err)
	}

	// Flock locks belong to the open file description, so a second
	// OpenFile in the same process contends like another process would.
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("acquiring lock on %s: %w", path, err)
	}

	return func() error {
		defer f.Close()
		return syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	}, nil
}
