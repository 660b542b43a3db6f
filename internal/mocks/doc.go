// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each
// mock exposes function fields for per-test behavior with sensible
// defaults when a function is not set.
package mocks
