// Package ingest re-serializes legacy JSON custom format sources as YAML.
// Documents pass through an ordered representation so the output keeps the
// author's key order instead of re-sorting alphabetically.
package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"curator/internal/batch"
	"curator/internal/document"
)

// Importer converts every *.json file in a source directory into a *.yml
// file with the same base name in the output directory.
type Importer struct {
	srcDir string
	outDir string
	logger *slog.Logger
}

// New returns an importer from srcDir into outDir.
func New(srcDir, outDir string, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{srcDir: srcDir, outDir: outDir, logger: logger}
}

// Summary reports the outcome of one import run.
type Summary struct {
	Imported int
	Failures []batch.FileError
}

// Run imports the whole source directory. Per-file failures are logged and
// collected; only a missing source directory aborts the run.
func (i *Importer) Run() (Summary, error) {
	paths, err := batch.JSONFiles(i.srcDir)
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(i.outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output directory %s: %w", i.outDir, err)
	}

	var summary Summary
	var failures batch.Errors
	for _, path := range paths {
		outPath := filepath.Join(i.outDir, batch.Stem(path)+".yml")
		if err := i.importFile(path, outPath); err != nil {
			i.logger.Error("import failed", "path", path, "error", err)
			failures.Add(path, err)
			continue
		}
		i.logger.Info("imported custom format", "source", path, "target", outPath)
		summary.Imported++
	}
	summary.Failures = failures.Entries()
	return summary, nil
}

func (i *Importer) importFile(path, outPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := document.DecodeOrdered(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return document.Save(outPath, doc)
}
