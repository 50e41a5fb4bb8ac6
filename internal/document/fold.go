package document

import "golang.org/x/text/cases"

// Fold returns the caseless comparison key for a name or filename. Both
// identity checks in this repository (custom format names, pattern
// filenames) treat case-only differences as collisions.
func Fold(s string) string {
	return cases.Fold().String(s)
}
