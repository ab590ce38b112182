// Package sqlite provides the SQLite-backed corpus store. A single
// database file holds the course catalog, ingested document metadata and
// the document-course link table, with schema migrations embedded in the
// binary.
package sqlite
