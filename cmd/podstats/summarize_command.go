package main

import (
	"github.com/spf13/cobra"

	"podstats/internal/report"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summarize [files...]",
		Short: "Print line, word and sentiment summaries per episode",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			summaries := make([]report.EpisodeSummary, 0, len(list.Conversations))
			for _, conv := range list.Conversations {
				summaries = append(summaries, report.Summarize(conv))
			}
			if jsonOutput {
				return writeJSON(cmd, summaries)
			}
			for _, s := range summaries {
				if err := s.WriteText(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output summaries as JSON")
	return cmd
}
