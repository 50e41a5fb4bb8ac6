package validate_test

import (
	"path/filepath"
	"strings"
	"testing"

	"curator/internal/logging"
	"curator/internal/testsupport"
	"curator/internal/validate"
)

func schemaDirs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	return filepath.Join(root, "custom_formats"), filepath.Join(root, "regex_patterns")
}

func runSchema(t *testing.T, formats, patterns string) validate.Report {
	t.Helper()
	report, err := validate.NewSchemaValidator(formats, patterns, logging.Nop()).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestSchemaValidatorAcceptsWellFormedDocuments(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "remux.yml"), `name: BR Remux
conditions:
  - name: Remux source
    type: source
    source: remux
    required: true
  - name: Group
    type: release_group
    pattern: ^(FraMeSToR)$
`)
	testsupport.WriteFile(t, filepath.Join(patterns, "framestor.yml"), "name: FraMeSToR\npattern: ^(FraMeSToR)$\n")

	report := runSchema(t, formats, patterns)
	if !report.OK() {
		t.Fatalf("unexpected findings: %+v", report.Findings)
	}
	if report.Checked != 2 {
		t.Fatalf("checked = %d, want 2", report.Checked)
	}
}

func TestSchemaValidatorRequiresNames(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "anon.yml"), "description: no name here\n")

	report := runSchema(t, formats, patterns)
	if len(report.Findings) != 1 {
		t.Fatalf("findings = %+v, want 1", report.Findings)
	}
	f := report.Findings[0]
	if f.Kind != validate.KindSchema || !strings.HasSuffix(f.Field, ".Name") {
		t.Fatalf("unexpected finding: %+v", f)
	}
}

func TestSchemaValidatorChecksConditionCoherence(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "odd.yml"), `name: Odd
conditions:
  - name: Bare resolution
    type: resolution
  - name: Mystery
    type: quality
    pattern: x
`)

	report := runSchema(t, formats, patterns)
	if len(report.Findings) != 2 {
		t.Fatalf("findings = %+v, want 2", report.Findings)
	}
	var sawValue, sawType bool
	for _, f := range report.Findings {
		if f.Kind != validate.KindSchema {
			t.Fatalf("unexpected kind: %+v", f)
		}
		if strings.Contains(f.Detail, "requires a resolution value") {
			sawValue = true
		}
		if strings.Contains(f.Detail, `unrecognized condition type "quality"`) {
			sawType = true
		}
	}
	if !sawValue || !sawType {
		t.Fatalf("missing condition findings: %+v", report.Findings)
	}
}

func TestSchemaValidatorDetectsDuplicateNames(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "a.yml"), "name: BR Remux\n")
	testsupport.WriteFile(t, filepath.Join(formats, "b.yml"), "name: BR Remux\n")
	testsupport.WriteFile(t, filepath.Join(formats, "c.yml"), "name: br remux\n")

	report := runSchema(t, formats, patterns)
	if len(report.Findings) != 2 {
		t.Fatalf("findings = %+v, want 2", report.Findings)
	}
	var sawExact, sawCaseless bool
	for _, f := range report.Findings {
		if f.Kind != validate.KindDuplicateName {
			t.Fatalf("unexpected kind: %+v", f)
		}
		if strings.Contains(f.Detail, "name already used by") {
			sawExact = true
		}
		if strings.Contains(f.Detail, "differs only by case") {
			sawCaseless = true
		}
	}
	if !sawExact || !sawCaseless {
		t.Fatalf("missing duplicate findings: %+v", report.Findings)
	}
}

func TestSchemaValidatorRequiresPatternField(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "remux.yml"), "name: BR Remux\n")
	testsupport.WriteFile(t, filepath.Join(patterns, "empty.yml"), "name: Empty\n")

	report := runSchema(t, formats, patterns)
	if len(report.Findings) != 1 {
		t.Fatalf("findings = %+v, want 1", report.Findings)
	}
	f := report.Findings[0]
	if f.Kind != validate.KindSchema || !strings.HasSuffix(f.Field, ".Pattern") {
		t.Fatalf("unexpected finding: %+v", f)
	}
}

func TestSchemaValidatorToleratesAbsentPatternDir(t *testing.T) {
	formats, patterns := schemaDirs(t)
	testsupport.WriteFile(t, filepath.Join(formats, "remux.yml"), "name: BR Remux\n")

	report := runSchema(t, formats, patterns)
	if !report.OK() || report.Checked != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
