package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"podstats/internal/corpus"
)

func newPhrasesCommand(ctx *commandContext) *cobra.Command {
	var (
		speaker     string
		length      int
		minPerConvo float64
		limit       int
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "phrases [files...]",
		Short: "List a speaker's most common phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			if speaker == "" {
				return errors.New("--speaker is required")
			}
			if length < 1 {
				return fmt.Errorf("--length must be at least 1, got %d", length)
			}
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			phrases := list.MostCommonPhrases(speaker, length, minPerConvo)
			if limit > 0 && len(phrases) > limit {
				phrases = phrases[:limit]
			}
			if jsonOutput {
				if phrases == nil {
					phrases = []corpus.FreqEntry{}
				}
				return writeJSON(cmd, phrases)
			}
			out := cmd.OutOrStdout()
			if len(phrases) == 0 {
				fmt.Fprintf(out, "No %d-token phrases from %s reach %.2f per episode\n", length, speaker, minPerConvo)
				return nil
			}
			episodes := float64(len(list.Conversations))
			rows := make([][]string, 0, len(phrases))
			for _, p := range phrases {
				rows = append(rows, []string{p.Sample, strconv.Itoa(p.Count), fmt.Sprintf("%.2f", float64(p.Count)/episodes)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Phrase", "Count", "Per episode"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().StringVarP(&speaker, "speaker", "s", "", "Speaker label as it appears in transcripts")
	cmd.Flags().IntVarP(&length, "length", "n", 3, "Phrase length in tokens")
	cmd.Flags().Float64Var(&minPerConvo, "min-per-convo", 1, "Minimum average occurrences per episode")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many phrases (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output phrases as JSON")
	return cmd
}

func newCollocationsCommand(ctx *commandContext) *cobra.Command {
	var (
		speaker    string
		num        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "collocations [files...]",
		Short: "List word pairs a speaker uses together unusually often",
		RunE: func(cmd *cobra.Command, args []string) error {
			if speaker == "" {
				return errors.New("--speaker is required")
			}
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			collocations := list.CollocationList(speaker, num)
			if jsonOutput {
				if collocations == nil {
					collocations = []corpus.Collocation{}
				}
				return writeJSON(cmd, collocations)
			}
			out := cmd.OutOrStdout()
			if len(collocations) == 0 {
				fmt.Fprintf(out, "No repeated collocations for %s\n", speaker)
				return nil
			}
			rows := make([][]string, 0, len(collocations))
			for _, c := range collocations {
				rows = append(rows, []string{c.String(), strconv.Itoa(c.Count), fmt.Sprintf("%.2f", c.Score)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Collocation", "Count", "Likelihood ratio"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().StringVarP(&speaker, "speaker", "s", "", "Speaker label as it appears in transcripts")
	cmd.Flags().IntVarP(&num, "num", "n", corpus.DefaultCollocations, "Number of collocations to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output collocations as JSON")
	return cmd
}
