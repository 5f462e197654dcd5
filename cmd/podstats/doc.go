// Package main hosts the podstats CLI entrypoint and command graph.
//
// The Cobra-based command tree loads transcripts from the configured episodes
// directory (or from file arguments), runs the per-speaker analytics and
// prints them as tables, JSON documents or rendered reports. Ingestion into
// the SQLite history store, preflight checks and configuration scaffolding
// live here too.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
