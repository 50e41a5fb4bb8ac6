package validate

import (
	"fmt"
	"log/slog"

	"curator/internal/batch"
	"curator/internal/document"
)

// RefValidator confirms that every custom format referenced by a profile
// exists by exact-case name.
type RefValidator struct {
	formatsDir  string
	profilesDir string
	logger      *slog.Logger
}

// NewRefValidator returns a reference validator over the given collections.
func NewRefValidator(formatsDir, profilesDir string, logger *slog.Logger) *RefValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefValidator{formatsDir: formatsDir, profilesDir: profilesDir, logger: logger}
}

// Run collects all custom format names, then checks every reference in
// every profile. Exact matches pass; caseless-only matches and unknown
// names are accumulated as findings.
func (v *RefValidator) Run() (Report, error) {
	names, folded, report, err := v.collectFormatNames()
	if err != nil {
		return Report{}, err
	}

	profilePaths, err := batch.YAMLFiles(v.profilesDir)
	if err != nil {
		return Report{}, err
	}

	for _, path := range profilePaths {
		var profile map[string]any
		if err := document.Load(path, &profile); err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
			continue
		}
		report.Checked++
		for _, key := range document.ProfileFormatKeys {
			entries, ok := profile[key].([]any)
			if !ok {
				continue
			}
			for _, entry := range entries {
				ref, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				name, ok := ref["name"].(string)
				if !ok {
					continue
				}
				if _, exact := names[name]; exact {
					continue
				}
				if canonical, caseless := folded[document.Fold(name)]; caseless {
					report.Findings = append(report.Findings, Finding{
						Kind:   KindCaseMismatch,
						Path:   path,
						Field:  key,
						Name:   name,
						Detail: fmt.Sprintf("differs by case from custom format %q", canonical),
					})
					continue
				}
				report.Findings = append(report.Findings, Finding{
					Kind:   KindMissingReference,
					Path:   path,
					Field:  key,
					Name:   name,
					Detail: "no custom format with this name",
				})
			}
		}
	}

	if report.OK() {
		v.logger.Info("all profile custom format references are valid",
			"profiles", len(profilePaths), "formats", len(names))
	}
	return report, nil
}

func (v *RefValidator) collectFormatNames() (map[string]struct{}, map[string]string, Report, error) {
	paths, err := batch.YAMLFiles(v.formatsDir)
	if err != nil {
		return nil, nil, Report{}, err
	}

	var report Report
	names := make(map[string]struct{}, len(paths))
	folded := make(map[string]string, len(paths))
	for _, path := range paths {
		var cf document.CustomFormat
		if err := document.Load(path, &cf); err != nil {
			report.Findings = append(report.Findings, Finding{
				Kind: KindSyntax, Path: path, Detail: err.Error(),
			})
			continue
		}
		if cf.Name == "" {
			continue
		}
		names[cf.Name] = struct{}{}
		folded[document.Fold(cf.Name)] = cf.Name
	}
	return names, folded, report, nil
}
