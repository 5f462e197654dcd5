// Package report turns parsed transcripts into per-episode summaries and the
// JSON documents consumed by charts, and renders whole-corpus reports as text,
// JSON, YAML, Markdown, HTML or PDF.
package report
