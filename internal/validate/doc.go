// Package validate checks the configuration dataset for broken
// cross-references, unparseable YAML, and structurally incomplete
// documents. Validators never stop at the first problem: findings
// accumulate across the whole tree and the aggregate outcome is decided at
// the end.
package validate
