// Package convert rewrites legacy specification-based custom format
// documents into the condition-based target schema. The pass is idempotent:
// documents already exposing conditions without specifications are left
// untouched, so running it twice changes nothing.
package convert
