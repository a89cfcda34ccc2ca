// Package lint owns the field manifest check run.
//
// Ownership boundary:
// - per-field spec registration and buffer construction
// - rejection collection and pass/fail verdict
// - check metrics and run diagnostics
//
// The package decides nothing about where manifests come from; callers
// hand it items and a run config.
package lint
