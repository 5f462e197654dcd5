package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"podstats/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.EpisodesDir = filepath.Join(base, "episodes")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.OutputDir = filepath.Join(base, "reports")
	if err := os.MkdirAll(cfg.Paths.EpisodesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func writeTranscript(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckReadableDirectory("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckTranscripts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	if result := CheckTranscripts(ctx, dir); result.Passed {
		t.Fatal("expected failure for empty directory")
	}

	writeTranscript(t, dir, "a.txt", "Episode 1\nTitle\nDate\nChris: hello\n")
	if result := CheckTranscripts(ctx, dir); !result.Passed || !strings.HasPrefix(result.Detail, "1 transcripts") {
		t.Fatalf("unexpected result %+v", result)
	}

	writeTranscript(t, dir, "b.txt", "Episode one\nTitle\nDate\nChris: hello\n")
	result := CheckTranscripts(ctx, dir)
	if result.Passed || !strings.Contains(result.Detail, "1 of 2 malformed") {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testConfig(t)
	writeTranscript(t, cfg.Paths.EpisodesDir, "a.txt", "Episode 1\nTitle\nDate\nChris: hello\n")

	results := RunAll(context.Background(), cfg)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}
	if results[4].Name != "Database" || !strings.Contains(results[4].Detail, "0 episodes") {
		t.Fatalf("unexpected database result %+v", results[4])
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatalf("expected nil, got %+v", results)
	}
}
