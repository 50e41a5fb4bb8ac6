package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"curator/internal/batch"
	"curator/internal/document"
)

// SchemaValidator checks that documents carry their required fields, that
// conditions are coherent, and that custom format names stay unique.
type SchemaValidator struct {
	formatsDir  string
	patternsDir string
	logger      *slog.Logger
	check       *validator.Validate
}

// NewSchemaValidator returns a schema validator over the given collections.
func NewSchemaValidator(formatsDir, patternsDir string, logger *slog.Logger) *SchemaValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchemaValidator{
		formatsDir:  formatsDir,
		patternsDir: patternsDir,
		logger:      logger,
		check:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run validates every custom format and pattern file. Custom format names
// are additionally checked for exact and case-only duplicates across files.
func (v *SchemaValidator) Run() (Report, error) {
	var report Report

	formatPaths, err := batch.YAMLFiles(v.formatsDir)
	if err != nil {
		return Report{}, err
	}

	exact := make(map[string]string)  // name -> first path
	folded := make(map[string]string) // fold(name) -> first name
	for _, path := range formatPaths {
		var cf document.CustomFormat
		if err := document.Load(path, &cf); err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
			continue
		}
		report.Checked++
		v.structFindings(path, &cf, &report)
		for i, cond := range cf.Conditions {
			v.conditionFindings(path, i, cond, &report)
		}
		if cf.Name == "" {
			continue
		}
		if first, dup := exact[cf.Name]; dup {
			report.Findings = append(report.Findings, Finding{
				Kind:   KindDuplicateName,
				Path:   path,
				Name:   cf.Name,
				Detail: fmt.Sprintf("name already used by %s", first),
			})
			continue
		}
		if firstName, dup := folded[document.Fold(cf.Name)]; dup && firstName != cf.Name {
			report.Findings = append(report.Findings, Finding{
				Kind:   KindDuplicateName,
				Path:   path,
				Name:   cf.Name,
				Detail: fmt.Sprintf("differs only by case from %q", firstName),
			})
		}
		exact[cf.Name] = path
		if _, ok := folded[document.Fold(cf.Name)]; !ok {
			folded[document.Fold(cf.Name)] = cf.Name
		}
	}

	patternPaths, err := batch.YAMLFiles(v.patternsDir)
	if err != nil && !errors.Is(err, batch.ErrMissingDir) {
		return Report{}, err
	}
	for _, path := range patternPaths {
		var pf document.PatternFile
		if err := document.Load(path, &pf); err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
			continue
		}
		report.Checked++
		v.structFindings(path, &pf, &report)
	}

	if report.OK() {
		v.logger.Info("all documents are structurally valid", "files", report.Checked)
	}
	return report, nil
}

func (v *SchemaValidator) structFindings(path string, doc any, report *Report) {
	err := v.check.Struct(doc)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		report.Findings = append(report.Findings, Finding{
			Kind: KindSchema, Path: path, Detail: err.Error(),
		})
		return
	}
	for _, fe := range verrs {
		report.Findings = append(report.Findings, Finding{
			Kind:   KindSchema,
			Path:   path,
			Field:  fe.Namespace(),
			Detail: fmt.Sprintf("failed %q validation", fe.Tag()),
		})
	}
}

func (v *SchemaValidator) conditionFindings(path string, index int, cond document.Condition, report *Report) {
	field := fmt.Sprintf("conditions[%d]", index)
	var want, got string
	switch cond.Type {
	case document.TypeResolution:
		want, got = "resolution", cond.Resolution
	case document.TypeSource:
		want, got = "source", cond.Source
	case document.TypeReleaseGroup, document.TypeReleaseTitle:
		want, got = "pattern", cond.Pattern
	case "":
		return // covered by the required-tag finding
	default:
		report.Findings = append(report.Findings, Finding{
			Kind:   KindSchema,
			Path:   path,
			Field:  field,
			Name:   cond.Name,
			Detail: fmt.Sprintf("unrecognized condition type %q", cond.Type),
		})
		return
	}
	if strings.TrimSpace(got) == "" {
		report.Findings = append(report.Findings, Finding{
			Kind:   KindSchema,
			Path:   path,
			Field:  field,
			Name:   cond.Name,
			Detail: fmt.Sprintf("type %q requires a %s value", cond.Type, want),
		})
	}
}
