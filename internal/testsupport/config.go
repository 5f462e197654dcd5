package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"podstats/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.EpisodesDir = filepath.Join(base, "episodes")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.OutputDir = filepath.Join(base, "reports")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := os.MkdirAll(cfgVal.Paths.EpisodesDir, 0o755); err != nil {
		t.Fatalf("mkdir episodes dir: %v", err)
	}
	return builder.cfg
}

// WithSpeakers overrides the report speakers on the test config.
func WithSpeakers(speakers ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Speakers = speakers
	}
}

// WithClassifier overrides the classifier hold-out size and seed.
func WithClassifier(testSize int, seed int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classifier.TestSize = testSize
		b.cfg.Classifier.Seed = seed
	}
}

// WithProfanityThreshold overrides the profanity decision threshold.
func WithProfanityThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.ProfanityThreshold = threshold
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
