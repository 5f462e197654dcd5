package config

import (
	"errors"
	"fmt"
)

// ReportFormats lists the output formats the report command accepts.
var ReportFormats = []string{"text", "json", "yaml", "markdown", "html", "pdf"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.ProfanityThreshold <= 0 || c.Analysis.ProfanityThreshold > 1 {
		return errors.New("analysis.profanity_threshold must be in (0, 1]")
	}
	if c.Analysis.MinSentiment < -1 || c.Analysis.MaxSentiment > 1 {
		return errors.New("analysis sentiment bounds must lie within [-1, 1]")
	}
	if c.Analysis.MinSentiment >= c.Analysis.MaxSentiment {
		return errors.New("analysis.min_sentiment must be less than analysis.max_sentiment")
	}
	return nil
}

func (c *Config) validateReport() error {
	if !ValidReportFormat(c.Report.Format) {
		return fmt.Errorf("report.format: unsupported value %q", c.Report.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

// ValidReportFormat reports whether format is one of ReportFormats.
func ValidReportFormat(format string) bool {
	for _, candidate := range ReportFormats {
		if candidate == format {
			return true
		}
	}
	return false
}
