package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand builds the command tree. The returned function closes the
// log files the commands opened and must run after Execute.
func newRootCommand() (*cobra.Command, func() error) {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "podstats",
		Short:         "Podcast transcript analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSummarizeCommand(ctx))
	rootCmd.AddCommand(newSentimentCommand(ctx))
	rootCmd.AddCommand(newProfanityCommand(ctx))
	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newPhrasesCommand(ctx))
	rootCmd.AddCommand(newCollocationsCommand(ctx))
	rootCmd.AddCommand(newSimilarCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newExportLinesCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newIngestCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd, ctx.close
}
