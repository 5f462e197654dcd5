package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"podstats/internal/corpus"
)

func newSimilarCommand(ctx *commandContext) *cobra.Command {
	var (
		speaker    string
		num        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "similar [files...]",
		Short: "Rank episode pairs by shared vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			pairs := list.SimilarEpisodes(speaker, num)
			if jsonOutput {
				if pairs == nil {
					pairs = []corpus.EpisodePair{}
				}
				return writeJSON(cmd, pairs)
			}
			out := cmd.OutOrStdout()
			if len(pairs) == 0 {
				fmt.Fprintln(out, "Need at least two episodes to compare")
				return nil
			}
			titles := make(map[int]string, len(list.Conversations))
			for _, conv := range list.Conversations {
				titles[conv.ID] = episodeLabel(conv.ID, conv.Title)
			}
			rows := make([][]string, 0, len(pairs))
			for _, p := range pairs {
				rows = append(rows, []string{titles[p.First], titles[p.Second], formatFloat(p.Similarity)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Episode", "Episode", "Similarity"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().StringVarP(&speaker, "speaker", "s", "", "Only compare this speaker's lines (default all speakers)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "Number of pairs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output pairs as JSON")
	return cmd
}
