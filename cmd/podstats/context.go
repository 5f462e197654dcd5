package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"podstats/internal/config"
	"podstats/internal/corpus"
	"podstats/internal/logging"
	"podstats/internal/profanity"
	"podstats/internal/sentiment"
	"podstats/internal/transcript"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	logCloser  io.Closer
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.logCloser, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// close releases the log files opened by ensureLogger.
func (c *commandContext) close() error {
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

// scorer returns the default sentiment and profanity models configured for this run.
func (c *commandContext) scorer() transcript.Scorer {
	threshold := profanity.DefaultThreshold
	if cfg := c.configValue(); cfg != nil {
		threshold = cfg.Analysis.ProfanityThreshold
	}
	return transcript.Scorer{
		Sentiment: sentiment.New(),
		Profanity: profanity.New(threshold),
	}
}

// transcriptPaths resolves positional arguments, falling back to every
// transcript in the episodes directory.
func (c *commandContext) transcriptPaths(args []string) ([]string, error) {
	if len(args) > 0 {
		paths := make([]string, 0, len(args))
		for _, arg := range args {
			expanded, err := config.ExpandPath(arg)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", arg, err)
			}
			paths = append(paths, expanded)
		}
		return paths, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	paths, err := corpus.Discover(cfg.Paths.EpisodesDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transcripts found in %s", cfg.Paths.EpisodesDir)
	}
	return paths, nil
}

func (c *commandContext) loadCorpus(ctx context.Context, args []string) (*corpus.List, error) {
	paths, err := c.transcriptPaths(args)
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return corpus.Load(ctx, paths, c.scorer(), logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// speakersOrDefault returns flagValue when set, otherwise the configured speakers.
func (c *commandContext) speakersOrDefault(flagValue []string) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	if cfg := c.configValue(); cfg != nil {
		return cfg.Report.Speakers
	}
	return nil
}
