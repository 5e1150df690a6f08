// Package internalcheck holds source-level policy tests for the
// library.
//
// These tests inspect the package sources rather than their behavior
// and exist to keep invariants that ordinary unit tests cannot see.
// The package is not intended for external use and the API may change
// without notice.
package internalcheck
