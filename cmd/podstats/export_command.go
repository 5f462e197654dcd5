package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"podstats/internal/config"
)

func newExportLinesCommand(ctx *commandContext) *cobra.Command {
	var (
		speaker string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export-lines [files...]",
		Short: "Write every line a speaker said to <speaker>.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if speaker == "" {
				return errors.New("--speaker is required")
			}
			dir := outDir
			if dir == "" {
				dir = ctx.configValue().Paths.OutputDir
			} else {
				expanded, err := config.ExpandPath(dir)
				if err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
				dir = expanded
			}
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			path, err := list.WriteLinesToFile(speaker, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d lines to %s\n", len(list.AllLines(speaker)), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&speaker, "speaker", "s", "", "Speaker label as it appears in transcripts")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default paths.output_dir)")
	return cmd
}
