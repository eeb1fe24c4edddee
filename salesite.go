// Package salesite aggregates third-party product-page HTML into structured
// sale records for a deals-curation admin tool. It converts an arbitrary
// product URL into a typed record (name, image, prices, discount,
// confidence) through a multi-phase extraction pipeline: structured-data
// markup first, then a size-bounded LLM pass cross-checked against the
// raw HTML by a hallucination-detecting confidence scorer. A batch driver
// processes ordered URL lists behind a per-batch domain circuit breaker.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package salesite
