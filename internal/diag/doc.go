// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a stable Code (PF rules
// plus LEX/SYN/IO pipeline faults), a short message, a primary source.Span,
// and optional Notes. Producers emit through the Reporter interface so they
// stay decoupled from storage; BagReporter aggregates into a Bag, which
// supports sorting, deduplication, and merging across files.
//
// The package performs no formatting and no IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver. Keep the data
// model deterministic so diagnostics can be cached and compared in tests.
package diag
