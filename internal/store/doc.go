// Package store persists ingested transcripts in SQLite.
//
// Every ingest opens a run identified by a UUID. Episodes are keyed by their
// episode number, so re-ingesting a transcript replaces its earlier rows along
// with the per-line and per-speaker aggregates derived from it.
package store
