// Package repolock guards the dataset tree against concurrent mutating runs.
// Commands that rewrite files acquire the lock before touching anything; a
// second curator invocation against the same root is refused instead of
// interleaving writes.
package repolock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock holds an acquired repository file lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock at path without blocking. It fails when another
// process already holds it.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire repository lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("repository lock %s is held by another curator run", path)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release repository lock %s: %w", l.path, err)
	}
	return nil
}
