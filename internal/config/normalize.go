package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeReport()
	c.normalizeClassifier()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("PODSTATS_EPISODES_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.EpisodesDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.EpisodesDir) == "" {
		c.Paths.EpisodesDir = defaultEpisodesDir
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}

	var err error
	if c.Paths.EpisodesDir, err = expandPath(c.Paths.EpisodesDir); err != nil {
		return fmt.Errorf("paths.episodes_dir: %w", err)
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.ProfanityThreshold == 0 {
		c.Analysis.ProfanityThreshold = defaultProfanityThreshold
	}
	if c.Analysis.MinSentiment == 0 && c.Analysis.MaxSentiment == 0 {
		c.Analysis.MinSentiment = defaultMinSentiment
		c.Analysis.MaxSentiment = defaultMaxSentiment
	}
	if c.Analysis.LongLineWords <= 0 {
		c.Analysis.LongLineWords = defaultLongLineWords
	}
}

func (c *Config) normalizeReport() {
	speakers := make([]string, 0, len(c.Report.Speakers))
	seen := make(map[string]struct{}, len(c.Report.Speakers))
	for _, speaker := range c.Report.Speakers {
		trimmed := strings.TrimSpace(speaker)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		speakers = append(speakers, trimmed)
	}
	if len(speakers) == 0 {
		speakers = append(speakers, defaultSpeakers...)
	}
	c.Report.Speakers = speakers

	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
}

func (c *Config) normalizeClassifier() {
	if c.Classifier.TestSize < 0 {
		c.Classifier.TestSize = 0
	}
	if c.Classifier.VocabSize <= 0 {
		c.Classifier.VocabSize = defaultVocabSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("PODSTATS_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
