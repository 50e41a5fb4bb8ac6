package convert

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"curator/internal/batch"
	"curator/internal/document"
)

// Legacy implementation tags understood by the converter.
const (
	implResolution   = "ResolutionSpecification"
	implSource       = "SourceSpecification"
	implReleaseGroup = "ReleaseGroupSpecification"
	implReleaseTitle = "ReleaseTitleSpecification"
)

// Numeric resolution codes used by the legacy schema.
var resolutionNames = map[int]string{
	360:  "360p",
	480:  "480p",
	540:  "540p",
	576:  "576p",
	720:  "720p",
	1080: "1080p",
	2160: "2160p",
}

// Numeric source codes used by the legacy schema.
var sourceNames = map[int]string{
	1: "cam",
	2: "telesync",
	3: "webdl",
	4: "webrip",
	5: "dvd",
	6: "hdtv",
	7: "bluray",
	8: "remux",
	9: "brdisk",
}

// Converter rewrites every legacy custom format document under a directory.
type Converter struct {
	dir    string
	logger *slog.Logger
}

// New returns a converter over the custom formats directory.
func New(dir string, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{dir: dir, logger: logger}
}

// Summary reports the outcome of one conversion run.
type Summary struct {
	Converted int
	Skipped   int
	Failures  []batch.FileError
}

// Run converts every file in the directory, skipping documents already in
// the target schema. Per-file failures are logged and collected; only a
// missing directory aborts the run.
func (c *Converter) Run() (Summary, error) {
	paths, err := batch.YAMLFiles(c.dir)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	var failures batch.Errors
	for _, path := range paths {
		converted, err := c.convertFile(path)
		if err != nil {
			c.logger.Error("conversion failed", "path", path, "error", err)
			failures.Add(path, err)
			continue
		}
		if converted {
			summary.Converted++
		} else {
			summary.Skipped++
		}
	}
	summary.Failures = failures.Entries()
	return summary, nil
}

func (c *Converter) convertFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}
	if probe == nil {
		return false, nil
	}
	_, hasConditions := probe["conditions"]
	_, hasSpecifications := probe["specifications"]
	if hasConditions && !hasSpecifications {
		return false, nil
	}

	var legacy document.LegacyFormat
	if err := yaml.Unmarshal(data, &legacy); err != nil {
		return false, fmt.Errorf("parse legacy schema: %w", err)
	}

	out := c.convertFormat(path, legacy)
	if err := document.Save(path, &out); err != nil {
		return false, err
	}
	c.logger.Info("converted custom format", "path", path, "conditions", len(out.Conditions))
	return true, nil
}

func (c *Converter) convertFormat(path string, legacy document.LegacyFormat) document.CustomFormat {
	name := legacy.Name
	if name == "" {
		name = "Unnamed"
	}

	conditions := make([]document.Condition, 0, len(legacy.Specifications))
	for _, spec := range legacy.Specifications {
		cond, ok := conditionFromSpecification(spec)
		if !ok {
			continue
		}
		if !recognizedImplementation(spec.Implementation) {
			// Lossy fallback: the value may not be a usable regex.
			c.logger.Warn("unrecognized specification implementation, kept as release_title pattern",
				"path", path, "implementation", spec.Implementation, "specification", spec.Name)
		}
		conditions = append(conditions, cond)
	}

	description := legacy.Description
	if description == "" {
		description = fmt.Sprintf("Matches release criteria for %s", name)
	}
	tags := legacy.Tags
	if tags == nil {
		tags = []string{}
	}
	tests := legacy.Tests
	if tests == nil {
		tests = []any{}
	}

	return document.CustomFormat{
		Name:        name,
		Description: description,
		Tags:        tags,
		Conditions:  conditions,
		Tests:       tests,
	}
}

func recognizedImplementation(impl string) bool {
	switch impl {
	case implResolution, implSource, implReleaseGroup, implReleaseTitle:
		return true
	}
	return false
}

// conditionFromSpecification maps one legacy specification to a condition.
// Specifications without a value produce nothing.
func conditionFromSpecification(spec document.Specification) (document.Condition, bool) {
	value := spec.Fields.Value
	if value == nil {
		return document.Condition{}, false
	}

	cond := document.Condition{
		Name:     spec.Name,
		Negate:   spec.Negate,
		Required: spec.Required,
	}

	switch spec.Implementation {
	case implResolution:
		cond.Type = document.TypeResolution
		cond.Resolution = resolutionName(value)
	case implSource:
		cond.Type = document.TypeSource
		cond.Source = sourceName(value)
	case implReleaseGroup:
		cond.Type = document.TypeReleaseGroup
		cond.Pattern = stringValue(value)
	default:
		// Includes ReleaseTitleSpecification and every unrecognized
		// implementation carrying a value.
		cond.Type = document.TypeReleaseTitle
		cond.Pattern = stringValue(value)
	}
	return cond, true
}

func resolutionName(value any) string {
	if n, ok := intValue(value); ok {
		if name, known := resolutionNames[n]; known {
			return name
		}
		return fmt.Sprintf("%dp", n)
	}
	return stringValue(value)
}

func sourceName(value any) string {
	if n, ok := intValue(value); ok {
		if name, known := sourceNames[n]; known {
			return name
		}
		return "unknown"
	}
	return stringValue(value)
}

func intValue(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
