// Package registry turns the two hand-maintained source documents (the
// builder registry and the weekly block-count statistics) into a single,
// validated, deterministically ordered builder table.
//
// Generation has exactly one forward path: load both documents, correlate
// builders with statistics by extra data, validate every invariant, order and
// partition the result, and emit an immutable Table. Any failure aborts the
// whole generation with an aggregated error; a partially-built table is never
// exposed.
//
// The pipeline runs once per table construction (typically at package
// initialization of the consuming program); the resulting Table is read-only
// and safe for concurrent use.
package registry
