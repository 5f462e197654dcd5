package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"podstats/internal/config"
	"podstats/internal/corpus"
	"podstats/internal/store"
	"podstats/internal/transcript"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckReadableDirectory verifies that the directory exists and can be listed.
func CheckReadableDirectory(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "read ok")
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}

// CheckTranscripts parses every transcript in dir without scoring and
// reports how many are well formed.
func CheckTranscripts(ctx context.Context, dir string) Result {
	const name = "Transcripts"

	paths, err := corpus.Discover(dir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if len(paths) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("no *.txt transcripts in %s", dir)}
	}

	var (
		malformed int
		firstErr  error
	)
	for _, path := range paths {
		if ctx.Err() != nil {
			return Result{Name: name, Detail: ctx.Err().Error()}
		}
		if _, err := transcript.ParseFile(path, transcript.Scorer{}); err != nil {
			malformed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if malformed > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%d of %d malformed (first: %v)", malformed, len(paths), firstErr)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d transcripts parse cleanly", len(paths))}
}

// CheckDatabase opens the transcript database and runs its health check.
func CheckDatabase(ctx context.Context, cfg *config.Config) Result {
	const name = "Database"

	st, err := store.Open(cfg)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	defer st.Close()

	health, err := st.CheckHealth(ctx)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	switch {
	case len(health.MissingTables) > 0:
		return Result{Name: name, Detail: fmt.Sprintf("missing tables: %v", health.MissingTables)}
	case !health.IntegrityCheck:
		return Result{Name: name, Detail: "integrity check failed"}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%d episodes, %d runs)", filepath.Base(health.DBPath), health.TotalEpisodes, health.TotalRuns),
	}
}
