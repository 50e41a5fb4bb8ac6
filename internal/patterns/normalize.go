package patterns

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"curator/internal/batch"
	"curator/internal/document"
)

var (
	collisionSuffix  = regexp.MustCompile(`\(\d+\)$`)
	collisionSplit   = regexp.MustCompile(`^(.+?)\s*\(\d+\)$`)
	generatedFromRef = regexp.MustCompile(`Auto-generated from (.+)$`)
)

// Normalizer renames pattern files whose names carry collision suffixes or
// filesystem-hostile leading characters.
type Normalizer struct {
	dir    string
	logger *slog.Logger
}

// NewNormalizer returns a normalizer over the pattern directory.
func NewNormalizer(dir string, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{dir: dir, logger: logger}
}

// Rename records one applied rename, by file stem.
type Rename struct {
	From string
	To   string
}

// NormalizeSummary reports the outcome of one normalization run.
type NormalizeSummary struct {
	Candidates int
	Renamed    []Rename
	Failures   []batch.FileError
}

type renamePlan struct {
	path    string
	stem    string
	newName string
	doc     yaml.MapSlice
}

// Run collects the full rename plan before touching any file, then applies
// it: the new file is written with its internal name field updated and the
// old file deleted. Planned names are claimed as they are assigned, so two
// renames in the same batch can never converge on one caseless filename,
// and a file is never renamed to its own current name.
func (n *Normalizer) Run() (NormalizeSummary, error) {
	paths, err := batch.YAMLFiles(n.dir)
	if err != nil {
		return NormalizeSummary{}, err
	}

	used := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		used[document.Fold(batch.Stem(path))] = struct{}{}
	}

	var summary NormalizeSummary
	var failures batch.Errors

	var plan []renamePlan
	for _, path := range paths {
		doc, err := document.LoadOrdered(path)
		if err != nil {
			n.logger.Error("skipping unreadable pattern file", "path", path, "error", err)
			failures.Add(path, err)
			continue
		}
		if doc == nil {
			continue
		}

		stem := batch.Stem(path)
		newName := stem
		needsRename := false

		if collisionSuffix.MatchString(stem) {
			newName = descriptiveName(stem, document.GetString(doc, "description"))
			needsRename = true
		}
		if strings.HasPrefix(stem, "#") {
			newName = "Hash" + stem[1:]
			needsRename = true
		}

		if needsRename && newName != stem {
			plan = append(plan, renamePlan{path: path, stem: stem, newName: newName, doc: doc})
		}
	}
	summary.Candidates = len(plan)

	for _, entry := range plan {
		final := entry.newName
		oldKey := document.Fold(entry.stem)
		for counter := 1; ; counter++ {
			key := document.Fold(final)
			if key == oldKey {
				break
			}
			if _, taken := used[key]; !taken {
				break
			}
			final = fmt.Sprintf("%s %d", entry.newName, counter)
		}
		if document.Fold(final) == oldKey {
			continue
		}

		newPath := filepath.Join(n.dir, final+".yml")
		doc := document.Set(entry.doc, "name", final)
		if err := document.Save(newPath, doc); err != nil {
			n.logger.Error("rename failed", "path", entry.path, "target", newPath, "error", err)
			failures.Add(entry.path, err)
			continue
		}
		if err := os.Remove(entry.path); err != nil {
			n.logger.Error("removing renamed file failed", "path", entry.path, "error", err)
			failures.Add(entry.path, err)
		}

		delete(used, oldKey)
		used[document.Fold(final)] = struct{}{}
		summary.Renamed = append(summary.Renamed, Rename{From: entry.stem, To: final})
		n.logger.Info("renamed pattern file", "from", entry.stem+".yml", "to", final+".yml")
	}

	summary.Failures = failures.Entries()
	return summary, nil
}

// descriptiveName derives a better name for a "(N)"-suffixed stem by
// combining its base with the custom format name recorded in the
// auto-generated description. Without that context the stem is returned
// unchanged.
func descriptiveName(stem, description string) string {
	parts := collisionSplit.FindStringSubmatch(stem)
	if parts == nil {
		return stem
	}
	base := strings.TrimSpace(parts[1])

	source := generatedFromRef.FindStringSubmatch(description)
	if source == nil {
		return stem
	}
	return SafeFilename(fmt.Sprintf("%s (%s)", base, source[1]))
}
