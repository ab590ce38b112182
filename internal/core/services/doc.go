// Package services contains the core business logic: keyword extraction
// with deterministic fallback, recommendation matching, the document
// ingestion pipeline and catalog management.
//
// Services depend only on domain types and driven ports. They implement
// the driving port interfaces consumed by the CLI adapter.
package services
