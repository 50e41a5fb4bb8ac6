package batch_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"curator/internal/batch"
	"curator/internal/testsupport"
)

func TestYAMLFilesSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "b.yml"), "name: b\n")
	testsupport.WriteFile(t, filepath.Join(dir, "a.yml"), "name: a\n")
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	testsupport.WriteFile(t, filepath.Join(dir, "sub", "c.yml"), "name: c\n")

	paths, err := batch.YAMLFiles(dir)
	if err != nil {
		t.Fatalf("YAMLFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}
	if batch.Stem(paths[0]) != "a" || batch.Stem(paths[1]) != "b" {
		t.Fatalf("unexpected order: %v", paths)
	}
}

func TestYAMLFilesMissingDirIsFatal(t *testing.T) {
	_, err := batch.YAMLFiles(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, batch.ErrMissingDir) {
		t.Fatalf("expected ErrMissingDir, got %v", err)
	}
}

func TestErrorsAccumulate(t *testing.T) {
	var errs batch.Errors
	if !errs.Empty() {
		t.Fatal("new collection should be empty")
	}

	errs.Add("a.yml", errors.New("bad"))
	errs.Add("b.yml", nil)
	errs.Add("c.yml", errors.New("worse"))

	if errs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", errs.Len())
	}
	entries := errs.Entries()
	if entries[0].Path != "a.yml" || entries[1].Path != "c.yml" {
		t.Fatalf("unexpected entries: %v", entries)
	}

	errs.Log(slog.New(slog.NewTextHandler(io.Discard, nil)), "failed")
}

func TestStem(t *testing.T) {
	if got := batch.Stem(filepath.Join("x", "Remux Tier.yml")); got != "Remux Tier" {
		t.Fatalf("Stem = %q", got)
	}
}
