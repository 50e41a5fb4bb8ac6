package validate

import (
	"fmt"
	"log/slog"
)

// Kind classifies a validation finding.
type Kind string

const (
	// KindMissingReference marks a profile entry naming a custom format
	// that does not exist.
	KindMissingReference Kind = "missing-reference"
	// KindCaseMismatch marks a profile entry whose name matches a custom
	// format only when case is ignored.
	KindCaseMismatch Kind = "case-mismatch"
	// KindSyntax marks a file that failed to parse.
	KindSyntax Kind = "syntax-error"
	// KindSchema marks a document missing required fields or carrying an
	// incoherent condition.
	KindSchema Kind = "schema"
	// KindDuplicateName marks custom format names that collide, exactly or
	// caselessly, across files.
	KindDuplicateName Kind = "duplicate-name"
)

// Finding is one accumulated validation problem.
type Finding struct {
	Kind   Kind
	Path   string
	Field  string
	Name   string
	Detail string
}

func (f Finding) String() string {
	s := fmt.Sprintf("%s: %s", f.Path, f.Kind)
	if f.Field != "" {
		s += " in " + f.Field
	}
	if f.Name != "" {
		s += fmt.Sprintf(" %q", f.Name)
	}
	if f.Detail != "" {
		s += ": " + f.Detail
	}
	return s
}

// Report is the outcome of one validation pass.
type Report struct {
	Checked  int
	Findings []Finding
}

// OK reports whether the pass produced no findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Merge appends another report's counts and findings.
func (r *Report) Merge(other Report) {
	r.Checked += other.Checked
	r.Findings = append(r.Findings, other.Findings...)
}

// Log emits one line per finding: warnings for case mismatches, errors for
// everything else.
func (r *Report) Log(logger *slog.Logger) {
	for _, f := range r.Findings {
		attrs := []any{"path", f.Path}
		if f.Field != "" {
			attrs = append(attrs, "field", f.Field)
		}
		if f.Name != "" {
			attrs = append(attrs, "name", f.Name)
		}
		if f.Detail != "" {
			attrs = append(attrs, "detail", f.Detail)
		}
		if f.Kind == KindCaseMismatch {
			logger.Warn(string(f.Kind), attrs...)
		} else {
			logger.Error(string(f.Kind), attrs...)
		}
	}
}
