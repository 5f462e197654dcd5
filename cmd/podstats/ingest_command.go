package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"podstats/internal/ingest"
	"podstats/internal/preflight"
	"podstats/internal/store"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Parse transcripts and store them in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sourceDir := cfg.Paths.EpisodesDir
			if len(args) == 0 {
				if res := preflight.CheckReadableDirectory("Episodes directory", sourceDir); !res.Passed {
					return fmt.Errorf("%s: %s", res.Name, res.Detail)
				}
			} else {
				sourceDir = filepath.Dir(args[0])
			}
			paths, err := ctx.transcriptPaths(args)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			ingester, err := ingest.New(cfg, st, ctx.scorer(), logger)
			if err != nil {
				return err
			}
			result, err := ingester.Run(cmd.Context(), sourceDir, paths)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d episodes (%d lines) in run %s\n", len(result.Episodes), result.Lines, result.RunID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run summary as JSON")
	return cmd
}
