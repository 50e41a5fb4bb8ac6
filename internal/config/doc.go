// Package config loads, normalizes, and validates curator configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes the dataset
// root, the per-collection directory names, and logging settings so every
// command resolves the same tree in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
