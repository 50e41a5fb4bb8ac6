package patterns

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"curator/internal/batch"
	"curator/internal/document"
)

// Synthesizer creates pattern files for condition patterns that have none.
type Synthesizer struct {
	formatsDir  string
	patternsDir string
	logger      *slog.Logger
}

// NewSynthesizer returns a synthesizer over the given collections.
func NewSynthesizer(formatsDir, patternsDir string, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{formatsDir: formatsDir, patternsDir: patternsDir, logger: logger}
}

// GenerateSummary reports the outcome of one synthesis run.
type GenerateSummary struct {
	Existing   int      // pattern files already indexed
	References int      // pattern occurrences found in custom formats
	Missing    int      // unique patterns without a file before the run
	Created    []string // stems of files written this run
	Unmatched  []string // patterns still without a file after the run
	Failures   []batch.FileError
}

// Run indexes existing pattern files, finds condition patterns without one,
// and writes a new file per missing pattern. Identical patterns across
// conditions are deduplicated within the run. Afterwards the index is
// rebuilt to verify coverage; leftovers are reported as warnings.
func (s *Synthesizer) Run() (GenerateSummary, error) {
	index, err := LoadIndex(s.patternsDir, s.logger)
	if err != nil {
		return GenerateSummary{}, err
	}
	refs, failures, err := CollectReferences(s.formatsDir, s.logger)
	if err != nil {
		return GenerateSummary{}, err
	}

	summary := GenerateSummary{
		Existing:   len(index),
		References: len(refs),
		Failures:   failures,
	}

	seen := make(map[string]struct{})
	var missing []Reference
	for _, ref := range refs {
		if _, ok := index[ref.Pattern]; ok {
			continue
		}
		if _, ok := seen[ref.Pattern]; ok {
			continue
		}
		seen[ref.Pattern] = struct{}{}
		missing = append(missing, ref)
	}
	summary.Missing = len(missing)

	if len(missing) == 0 {
		s.logger.Info("all condition patterns have matching pattern files")
		return summary, nil
	}

	if err := os.MkdirAll(s.patternsDir, 0o755); err != nil {
		return summary, fmt.Errorf("create pattern directory %s: %w", s.patternsDir, err)
	}

	claimed, err := claimedStems(s.patternsDir)
	if err != nil {
		return summary, err
	}

	var writeFailures batch.Errors
	for _, ref := range missing {
		stem := claimStem(claimed, SanitizeFilename(ref.Name))
		path := filepath.Join(s.patternsDir, stem+".yml")
		pf := document.PatternFile{
			Name:        ref.Name,
			Pattern:     ref.Pattern,
			Description: fmt.Sprintf("Auto-generated from %s", ref.Format),
			Tags:        InferTags(ref.Name, ref.Pattern, ref.Format),
			Tests:       []any{},
		}
		if err := document.Save(path, &pf); err != nil {
			s.logger.Error("writing pattern file failed", "path", path, "error", err)
			writeFailures.Add(path, err)
			continue
		}
		s.logger.Info("created pattern file", "path", path, "format", ref.Format)
		summary.Created = append(summary.Created, stem)
	}
	summary.Failures = append(summary.Failures, writeFailures.Entries()...)

	rebuilt, err := LoadIndex(s.patternsDir, s.logger)
	if err != nil {
		return summary, err
	}
	for _, ref := range refs {
		if _, ok := rebuilt[ref.Pattern]; !ok {
			summary.Unmatched = append(summary.Unmatched, ref.Pattern)
		}
	}
	summary.Unmatched = dedupe(summary.Unmatched)
	for _, pattern := range summary.Unmatched {
		s.logger.Warn("pattern still has no matching file", "pattern", pattern)
	}

	return summary, nil
}

// claimedStems seeds the collision set with every existing file stem,
// fold-keyed so case-only variants collide.
func claimedStems(dir string) (map[string]struct{}, error) {
	paths, err := batch.YAMLFiles(dir)
	if err != nil {
		return nil, err
	}
	claimed := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		claimed[document.Fold(batch.Stem(path))] = struct{}{}
	}
	return claimed, nil
}

// claimStem probes " (1)", " (2)", ... suffixes until an unclaimed stem is
// found and claims it immediately so later files in the same run cannot
// take it.
func claimStem(claimed map[string]struct{}, base string) string {
	if base == "" {
		base = "pattern"
	}
	stem := base
	for counter := 1; ; counter++ {
		if _, taken := claimed[document.Fold(stem)]; !taken {
			break
		}
		stem = fmt.Sprintf("%s (%d)", base, counter)
	}
	claimed[document.Fold(stem)] = struct{}{}
	return stem
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
