//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

// lockFor takes an exclusive advisory lock on path+".lock" and returns a
// function that releases it and removes the lock file.
func lockFor(path string) (func(), error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	return func() {
		_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		_ = f.Close()
		_ = os.Remove(path + ".lock")
	}, nil
}
