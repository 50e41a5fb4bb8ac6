package patterns

import (
	"errors"
	"log/slog"

	"curator/internal/batch"
	"curator/internal/document"
)

// Index maps exact pattern strings to the file stem that holds them.
type Index map[string]string

// LoadIndex reads every pattern file under dir. A missing directory yields
// an empty index because the synthesizer creates it on demand; unreadable
// files are skipped so one broken document cannot block the batch.
func LoadIndex(dir string, logger *slog.Logger) (Index, error) {
	idx := Index{}
	paths, err := batch.YAMLFiles(dir)
	if err != nil {
		if errors.Is(err, batch.ErrMissingDir) {
			return idx, nil
		}
		return nil, err
	}
	for _, path := range paths {
		var pf document.PatternFile
		if err := document.Load(path, &pf); err != nil {
			if logger != nil {
				logger.Warn("skipping unreadable pattern file", "path", path, "error", err)
			}
			continue
		}
		if pf.Pattern == "" {
			continue
		}
		idx[pf.Pattern] = batch.Stem(path)
	}
	return idx, nil
}

// Reference names one pattern occurrence inside a custom format condition.
type Reference struct {
	Pattern string
	Name    string // condition name
	Format  string // owning custom format name
}

// CollectReferences gathers every pattern-bearing condition across the
// custom formats directory in file order. A missing directory is fatal;
// unreadable documents are reported through failures and skipped.
func CollectReferences(dir string, logger *slog.Logger) ([]Reference, []batch.FileError, error) {
	paths, err := batch.YAMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	var refs []Reference
	var failures batch.Errors
	for _, path := range paths {
		var cf document.CustomFormat
		if err := document.Load(path, &cf); err != nil {
			if logger != nil {
				logger.Error("skipping unreadable custom format", "path", path, "error", err)
			}
			failures.Add(path, err)
			continue
		}
		formatName := cf.Name
		if formatName == "" {
			formatName = batch.Stem(path)
		}
		for _, cond := range cf.Conditions {
			if cond.Pattern == "" {
				continue
			}
			name := cond.Name
			if name == "" {
				name = "Unknown"
			}
			refs = append(refs, Reference{
				Pattern: cond.Pattern,
				Name:    name,
				Format:  formatName,
			})
		}
	}
	return refs, failures.Entries(), nil
}
