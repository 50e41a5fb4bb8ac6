package validate_test

import (
	"errors"
	"path/filepath"
	"testing"

	"curator/internal/batch"
	"curator/internal/logging"
	"curator/internal/testsupport"
	"curator/internal/validate"
)

func TestSyntaxValidatorReportsParseFailures(t *testing.T) {
	root := t.TempDir()
	formats := filepath.Join(root, "custom_formats")
	testsupport.WriteFile(t, filepath.Join(formats, "good.yml"), "name: Good\n")
	testsupport.WriteFile(t, filepath.Join(formats, "bad.yml"), "name: [unclosed\n")

	report, err := validate.NewSyntaxValidator([]string{formats}, nil, logging.Nop()).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Checked != 2 {
		t.Fatalf("checked = %d, want 2", report.Checked)
	}
	if len(report.Findings) != 1 {
		t.Fatalf("findings = %+v, want 1", report.Findings)
	}
	f := report.Findings[0]
	if f.Kind != validate.KindSyntax || filepath.Base(f.Path) != "bad.yml" {
		t.Fatalf("unexpected finding: %+v", f)
	}
}

func TestSyntaxValidatorSkipsAbsentOptionalDir(t *testing.T) {
	root := t.TempDir()
	formats := filepath.Join(root, "custom_formats")
	testsupport.WriteFile(t, filepath.Join(formats, "good.yml"), "name: Good\n")

	v := validate.NewSyntaxValidator([]string{formats}, []string{filepath.Join(root, "regex_patterns")}, logging.Nop())
	report, err := v.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.OK() || report.Checked != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestSyntaxValidatorRequiresMandatoryDirs(t *testing.T) {
	root := t.TempDir()
	_, err := validate.NewSyntaxValidator([]string{filepath.Join(root, "custom_formats")}, nil, logging.Nop()).Run()
	if !errors.Is(err, batch.ErrMissingDir) {
		t.Fatalf("err = %v, want ErrMissingDir", err)
	}
}
