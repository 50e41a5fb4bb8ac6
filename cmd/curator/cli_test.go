package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curator/internal/document"
	"curator/internal/testsupport"
)

// runCurator executes one full command tree against a fresh root command so
// per-invocation state (config cache, flags) never leaks between tests.
func runCurator(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommandRewritesLegacyFiles(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "custom_formats", "remux.yml")
	testsupport.WriteFile(t, path, `name: Remux
specifications:
  - name: Remux source
    implementation: SourceSpecification
    required: true
    fields:
      value: 8
`)

	out, err := runCurator(t, "convert", "--root", root)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Converted 1 custom format(s); 0 already in target schema.") {
		t.Fatalf("unexpected output: %s", out)
	}

	var cf document.CustomFormat
	if err := document.Load(path, &cf); err != nil {
		t.Fatalf("load converted file: %v", err)
	}
	if len(cf.Conditions) != 1 || cf.Conditions[0].Type != document.TypeSource || cf.Conditions[0].Source != "remux" {
		t.Fatalf("unexpected conversion: %+v", cf)
	}

	out, err = runCurator(t, "convert", "--root", root)
	if err != nil {
		t.Fatalf("second convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Converted 0 custom format(s); 1 already in target schema.") {
		t.Fatalf("convert is not idempotent: %s", out)
	}
}

func TestPatternsGenerateAndNormalizeCommands(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "custom_formats", "web.yml"), `name: Web Group
conditions:
  - name: Group
    type: release_group
    pattern: ^(NTb)$
`)

	out, err := runCurator(t, "patterns", "generate", "--root", root)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created 1 new pattern file(s)") {
		t.Fatalf("unexpected output: %s", out)
	}
	var pf document.PatternFile
	if err := document.Load(filepath.Join(root, "regex_patterns", "Group.yml"), &pf); err != nil {
		t.Fatalf("load generated pattern: %v", err)
	}
	if pf.Pattern != "^(NTb)$" || pf.Description != "Auto-generated from Web Group" {
		t.Fatalf("unexpected pattern file: %+v", pf)
	}

	testsupport.WriteFile(t, filepath.Join(root, "regex_patterns", "Manual (1).yml"),
		"name: \"Manual (1)\"\npattern: x\ndescription: \"Auto-generated from Web Group\"\n")

	out, err = runCurator(t, "patterns", "normalize", "--root", root)
	if err != nil {
		t.Fatalf("normalize: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Renamed 1 of 1 candidate file(s).") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "regex_patterns", "Manual (Web Group).yml")); err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}
}

func TestValidateAllAcceptsCleanDataset(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "custom_formats", "remux.yml"), `name: Remux
conditions:
  - name: Remux source
    type: source
    source: remux
`)
	testsupport.WriteFile(t, filepath.Join(root, "profiles", "main.yml"), `name: Main
custom_formats:
  - name: Remux
`)

	out, err := runCurator(t, "validate", "all", "--root", root)
	if err != nil {
		t.Fatalf("validate all: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Dataset is valid.") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestValidateAllReportsFindingsAsError(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "custom_formats", "remux.yml"), "name: Remux\n")
	testsupport.WriteFile(t, filepath.Join(root, "profiles", "main.yml"), `name: Main
custom_formats:
  - name: Ghost
`)

	out, err := runCurator(t, "validate", "all", "--root", root)
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(err.Error(), "finding(s)") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "missing-reference") {
		t.Fatalf("finding table missing: %s", out)
	}
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCurator(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample configuration to "+path) {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCurator(t, "config", "init", "--path", path); err == nil {
		t.Fatal("second init should refuse without --overwrite")
	}
	if out, err := runCurator(t, "config", "init", "--path", path, "--overwrite"); err != nil {
		t.Fatalf("overwrite init: %v\n%s", err, out)
	}
}

func TestConfigShowFallsBackToDefaults(t *testing.T) {
	out, err := runCurator(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "# Config file did not exist; defaults shown") {
		t.Fatalf("default notice missing: %s", out)
	}
	if !strings.Contains(out, "[paths]") || !strings.Contains(out, "custom_formats_dir = 'custom_formats'") {
		t.Fatalf("rendered config missing: %s", out)
	}
}
