// Package patterns maintains the standalone regex pattern files backing
// custom format conditions. Pattern lookup is by exact pattern string: the
// synthesizer creates a pattern file for every condition pattern that has
// none, and the normalizer rewrites pattern filenames that carry collision
// suffixes or filesystem-hostile characters.
//
// Filenames are the secondary identity of a pattern file and must stay
// unique case-insensitively; both passes claim names through a shared
// fold-keyed set seeded from the files already on disk, so a single run can
// never produce two files whose names differ only by case.
package patterns
