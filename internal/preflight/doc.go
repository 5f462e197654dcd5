// Package preflight provides readiness checks for the filesystem paths and
// the database podstats depends on.
//
// The CLI "podstats check" command runs RunAll and prints each Result; the
// ingest command runs the episodes-directory checks before taking the lock.
package preflight
