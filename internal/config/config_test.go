package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"podstats/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "podstats")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if !filepath.IsAbs(cfg.Paths.EpisodesDir) {
		t.Fatalf("expected absolute episodes dir, got %q", cfg.Paths.EpisodesDir)
	}
	if got := strings.Join(cfg.Report.Speakers, ","); got != "Chris,Caller" {
		t.Fatalf("unexpected default speakers: %q", got)
	}
	if cfg.Analysis.ProfanityThreshold != 0.5 {
		t.Fatalf("unexpected profanity threshold: %v", cfg.Analysis.ProfanityThreshold)
	}
	if cfg.Classifier.VocabSize != 2000 {
		t.Fatalf("unexpected vocab size: %d", cfg.Classifier.VocabSize)
	}
	if cfg.DatabasePath() != filepath.Join(wantData, "podstats.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.OutputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.EpisodesDir); !os.IsNotExist(err) {
		t.Fatalf("expected episodes dir to be left alone, stat err = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "podstats.toml")

	type payload struct {
		Paths struct {
			EpisodesDir string `toml:"episodes_dir"`
		} `toml:"paths"`
		Report struct {
			Speakers []string `toml:"speakers"`
			Format   string   `toml:"format"`
		} `toml:"report"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.EpisodesDir = filepath.Join(tempDir, "eps")
	custom.Report.Speakers = []string{" Host ", "Guest", "Host", ""}
	custom.Report.Format = " JSON "
	custom.Logging.Format = "XML"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.EpisodesDir != custom.Paths.EpisodesDir {
		t.Fatalf("unexpected episodes dir: %q", cfg.Paths.EpisodesDir)
	}
	if got := strings.Join(cfg.Report.Speakers, ","); got != "Host,Guest" {
		t.Fatalf("expected trimmed, deduplicated speakers, got %q", got)
	}
	if cfg.Report.Format != "json" {
		t.Fatalf("expected lower-cased format, got %q", cfg.Report.Format)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected unknown log format to fall back to console, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected lower-cased level, got %q", cfg.Logging.Level)
	}
}

func TestLoadHonoursEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)

	episodes := filepath.Join(work, "from-env")
	t.Setenv("PODSTATS_EPISODES_DIR", episodes)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.EpisodesDir != episodes {
		t.Fatalf("expected env episodes dir, got %q", cfg.Paths.EpisodesDir)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)
	t.Setenv("PODSTATS_LOG_LEVEL", "")
	os.Unsetenv("PODSTATS_LOG_LEVEL")

	if err := os.WriteFile(filepath.Join(work, ".env"), []byte("PODSTATS_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PODSTATS_LOG_LEVEL") })
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from .env, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"threshold", func(c *config.Config) { c.Analysis.ProfanityThreshold = 1.5 }, "profanity_threshold"},
		{"bounds", func(c *config.Config) { c.Analysis.MinSentiment = 0.5; c.Analysis.MaxSentiment = 0.1 }, "min_sentiment"},
		{"format", func(c *config.Config) { c.Report.Format = "docx" }, "report.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Classifier.TestSize != 500 {
		t.Fatalf("unexpected sample test size: %d", cfg.Classifier.TestSize)
	}

	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(encoded, "episodes_dir") {
		t.Fatalf("encoded config missing paths section: %s", encoded)
	}
}
