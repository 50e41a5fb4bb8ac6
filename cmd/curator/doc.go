// Package main hosts the curator CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// maintenance passes over the configuration dataset: schema conversion,
// JSON import, pattern synthesis and renaming, and validation. It
// centralizes configuration resolution, repository locking, and structured
// logging setup so subcommands can focus on reporting.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
