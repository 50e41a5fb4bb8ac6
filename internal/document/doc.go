// Package document defines the on-disk YAML document types curated by this
// tool (custom formats, regex pattern files, profiles, and the legacy
// specification schema) together with their load and save helpers.
//
// Serialization goes through goccy/go-yaml in block style with document key
// order preserved: typed documents keep struct field order, and untyped
// documents round-trip through ordered maps so foreign keys survive rewrites
// untouched. All files are UTF-8, one logical entity per file.
package document
