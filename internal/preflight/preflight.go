package preflight

import (
	"context"

	"podstats/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

// RunAll executes every preflight check for the given config. The data and
// output directories are created first, as every command would.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	_ = cfg.EnsureDirectories()

	results := []Result{
		CheckReadableDirectory("Episodes directory", cfg.Paths.EpisodesDir),
		CheckTranscripts(ctx, cfg.Paths.EpisodesDir),
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
	}
	if cfg.Paths.OutputDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	}
	results = append(results, CheckDatabase(ctx, cfg))
	return results
}
