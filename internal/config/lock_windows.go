//go:build windows

package config

import (
	"fmt"
	"os"
)

// lockFor creates path+".lock" exclusively. Windows has no flock, so the
// lock file's existence is the lock.
func lockFor(path string) (func(), error) {
	f, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	return func() {
		_ = f.Close()
		_ = os.Remove(path + ".lock")
	}, nil
}
