// Package logging assembles structured slog loggers used across podstats.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so analysis code can tag log
// lines with the run identifier and the episode being processed. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
