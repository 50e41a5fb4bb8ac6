// Package batch provides the shared shape of a one-shot maintenance pass:
// list a directory of documents, process each file independently, accumulate
// per-file failures, and decide the aggregate outcome at the end. A missing
// directory is the only fatal condition.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileError records one failed file within a run.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Errors accumulates per-file failures across a run.
type Errors struct {
	entries []FileError
}

// Add records a failure. A nil error is ignored.
func (e *Errors) Add(path string, err error) {
	if err == nil {
		return
	}
	e.entries = append(e.entries, FileError{Path: path, Err: err})
}

// Empty reports whether no failures were recorded.
func (e *Errors) Empty() bool {
	return len(e.entries) == 0
}

// Len returns the number of recorded failures.
func (e *Errors) Len() int {
	return len(e.entries)
}

// Entries returns the recorded failures in insertion order.
func (e *Errors) Entries() []FileError {
	return e.entries
}

// Log emits one error line per recorded failure.
func (e *Errors) Log(logger *slog.Logger, msg string) {
	for _, entry := range e.entries {
		logger.Error(msg, "path", entry.Path, "error", entry.Err)
	}
}

// ErrMissingDir marks the fatal missing-directory condition.
var ErrMissingDir = errors.New("directory not found")

// YAMLFiles returns the sorted *.yml paths directly under dir. A missing
// directory is fatal for the whole run.
func YAMLFiles(dir string) ([]string, error) {
	return filesWithExt(dir, ".yml")
}

// JSONFiles returns the sorted *.json paths directly under dir.
func JSONFiles(dir string) ([]string, error) {
	return filesWithExt(dir, ".json")
}

func filesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDir, dir)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Stem returns the filename without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
