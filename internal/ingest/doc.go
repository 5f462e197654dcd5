// Package ingest loads transcripts into the store under an exclusive
// file lock so that only one writer runs at a time.
package ingest
