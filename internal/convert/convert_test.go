package convert_test

import (
	"path/filepath"
	"testing"

	"curator/internal/convert"
	"curator/internal/document"
	"curator/internal/logging"
	"curator/internal/testsupport"
)

func writeLegacy(t *testing.T, dir, stem, implementation string, value string) string {
	t.Helper()
	path := filepath.Join(dir, stem+".yml")
	testsupport.WriteFile(t, path, ""+
		"name: "+stem+"\n"+
		"specifications:\n"+
		"  - name: Spec\n"+
		"    implementation: "+implementation+"\n"+
		"    negate: false\n"+
		"    required: true\n"+
		"    fields:\n"+
		"      value: "+value+"\n")
	return path
}

func loadFormat(t *testing.T, path string) document.CustomFormat {
	t.Helper()
	var cf document.CustomFormat
	if err := document.Load(path, &cf); err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return cf
}

func runConverter(t *testing.T, dir string) convert.Summary {
	t.Helper()
	summary, err := convert.New(dir, logging.Nop()).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return summary
}

func TestResolutionCodeMapsToName(t *testing.T) {
	dir := t.TempDir()
	path := writeLegacy(t, dir, "HD", "ResolutionSpecification", "1080")

	summary := runConverter(t, dir)
	if summary.Converted != 1 {
		t.Fatalf("expected 1 conversion, got %+v", summary)
	}

	cf := loadFormat(t, path)
	if len(cf.Conditions) != 1 {
		t.Fatalf("expected 1 condition, got %+v", cf.Conditions)
	}
	cond := cf.Conditions[0]
	if cond.Type != "resolution" || cond.Resolution != "1080p" {
		t.Fatalf("unexpected condition: %+v", cond)
	}
	if !cond.Required || cond.Negate {
		t.Fatalf("negate/required not carried over: %+v", cond)
	}
}

func TestUnknownResolutionCodeGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	path := writeLegacy(t, dir, "Odd", "ResolutionSpecification", "2000")

	runConverter(t, dir)

	cf := loadFormat(t, path)
	if cf.Conditions[0].Resolution != "2000p" {
		t.Fatalf("expected 2000p, got %q", cf.Conditions[0].Resolution)
	}
}

func TestSourceCodes(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"7", "bluray"},
		{"99", "unknown"},
		{"1", "cam"},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		path := writeLegacy(t, dir, "Src", "SourceSpecification", tc.value)
		runConverter(t, dir)
		cf := loadFormat(t, path)
		cond := cf.Conditions[0]
		if cond.Type != "source" || cond.Source != tc.want {
			t.Fatalf("value %s: got %+v, want source %q", tc.value, cond, tc.want)
		}
	}
}

func TestReleaseGroupBecomesPattern(t *testing.T) {
	dir := t.TempDir()
	path := writeLegacy(t, dir, "Groups", "ReleaseGroupSpecification", `"^(FraMeSToR)$"`)

	runConverter(t, dir)

	cond := loadFormat(t, path).Conditions[0]
	if cond.Type != "release_group" || cond.Pattern != "^(FraMeSToR)$" {
		t.Fatalf("unexpected condition: %+v", cond)
	}
}

func TestUnrecognizedImplementationFallsBackToReleaseTitle(t *testing.T) {
	dir := t.TempDir()
	path := writeLegacy(t, dir, "Weird", "LanguageSpecification", "3")

	runConverter(t, dir)

	cond := loadFormat(t, path).Conditions[0]
	if cond.Type != "release_title" || cond.Pattern != "3" {
		t.Fatalf("expected release_title fallback, got %+v", cond)
	}
}

func TestSpecificationWithoutValueIsDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NoValue.yml")
	testsupport.WriteFile(t, path, ""+
		"name: NoValue\n"+
		"specifications:\n"+
		"  - name: Spec\n"+
		"    implementation: ResolutionSpecification\n"+
		"    fields: {}\n")

	runConverter(t, dir)

	cf := loadFormat(t, path)
	if len(cf.Conditions) != 0 {
		t.Fatalf("expected no conditions, got %+v", cf.Conditions)
	}
	if cf.Description != "Matches release criteria for NoValue" {
		t.Fatalf("default description not synthesized: %q", cf.Description)
	}
	if cf.Tags == nil || cf.Tests == nil {
		t.Fatalf("tags/tests not defaulted: %+v", cf)
	}
}

func TestConverterIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeLegacy(t, dir, "Stable", "SourceSpecification", "8")

	first := runConverter(t, dir)
	if first.Converted != 1 {
		t.Fatalf("first run: %+v", first)
	}
	afterFirst := testsupport.ReadFile(t, path)

	second := runConverter(t, dir)
	if second.Converted != 0 || second.Skipped != 1 {
		t.Fatalf("second run should skip: %+v", second)
	}
	if testsupport.ReadFile(t, path) != afterFirst {
		t.Fatal("second run changed the file")
	}
}

func TestBrokenFileIsSkippedAndReported(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "bad.yml"), "name: [unclosed\n")
	good := writeLegacy(t, dir, "Good", "SourceSpecification", "5")

	summary := runConverter(t, dir)
	if summary.Converted != 1 {
		t.Fatalf("good file not converted: %+v", summary)
	}
	if len(summary.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %+v", summary.Failures)
	}

	if loadFormat(t, good).Conditions[0].Source != "dvd" {
		t.Fatal("good file has wrong conversion")
	}
}

func TestMissingDirectoryIsFatal(t *testing.T) {
	_, err := convert.New(filepath.Join(t.TempDir(), "absent"), logging.Nop()).Run()
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
