package validate

import (
	"errors"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"curator/internal/batch"
)

// SyntaxValidator confirms that every YAML file in the dataset parses.
type SyntaxValidator struct {
	required []string
	optional []string
	logger   *slog.Logger
}

// NewSyntaxValidator returns a syntax validator. Required directories must
// exist; optional ones (collections created on demand, like the pattern
// directory before a first synthesis run) are skipped when absent.
func NewSyntaxValidator(required, optional []string, logger *slog.Logger) *SyntaxValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyntaxValidator{required: required, optional: optional, logger: logger}
}

// Run parses every file in every collection and accumulates failures.
func (v *SyntaxValidator) Run() (Report, error) {
	var report Report
	for _, dir := range v.required {
		if err := v.checkDir(dir, &report); err != nil {
			return Report{}, err
		}
	}
	for _, dir := range v.optional {
		err := v.checkDir(dir, &report)
		if errors.Is(err, batch.ErrMissingDir) {
			continue
		}
		if err != nil {
			return Report{}, err
		}
	}
	if report.OK() {
		v.logger.Info("all YAML files parse", "files", report.Checked)
	}
	return report, nil
}

func (v *SyntaxValidator) checkDir(dir string, report *Report) error {
	paths, err := batch.YAMLFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		report.Checked++
		data, err := os.ReadFile(path)
		if err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
			continue
		}
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
		}
	}
	return nil
}
