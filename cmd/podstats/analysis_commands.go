package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"podstats/internal/report"
)

func newSentimentCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		allLines   bool
		minFlag    float64
		maxFlag    float64
		speakers   []string
	)

	cmd := &cobra.Command{
		Use:   "sentiment [files...]",
		Short: "Show per-speaker sentiment statistics",
		Long: "Show per-speaker sentiment statistics.\n\n" +
			"With --json, one document per episode counts each speaker's sentences whose\n" +
			"score lies strictly between --min and --max. Add --all-lines to emit every\n" +
			"line's speaker and mean sentiment instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			cfg := ctx.configValue()
			lo, hi := cfg.Analysis.MinSentiment, cfg.Analysis.MaxSentiment
			if cmd.Flags().Changed("min") {
				lo = minFlag
			}
			if cmd.Flags().Changed("max") {
				hi = maxFlag
			}
			if lo >= hi {
				return fmt.Errorf("--min (%g) must be below --max (%g)", lo, hi)
			}
			names := ctx.speakersOrDefault(speakers)

			if jsonOutput && allLines {
				docs := make([]report.AllSentimentDoc, 0, len(list.Conversations))
				for _, conv := range list.Conversations {
					docs = append(docs, report.AllSentiment(conv))
				}
				return writeJSONLines(cmd, docs)
			}
			if jsonOutput {
				docs := make([]report.SentimentCountDoc, 0, len(list.Conversations))
				for _, conv := range list.Conversations {
					docs = append(docs, report.SentimentCount(conv, names, lo, hi))
				}
				return writeJSONLines(cmd, docs)
			}

			var rows [][]string
			for _, conv := range list.Conversations {
				for _, speaker := range conv.Speakers() {
					st := conv.SentimentStats(speaker)
					rows = append(rows, []string{
						episodeLabel(conv.ID, conv.Title),
						speakerLabel(speaker),
						strconv.Itoa(conv.SentenceCount(speaker)),
						strconv.Itoa(conv.CountSentimentBetween(speaker, lo, hi)),
						formatFloat(st.CompoundAverage),
						formatFloat(st.CompoundVariance),
					})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Episode", "Speaker", "Sentences", fmt.Sprintf("In (%g, %g)", lo, hi), "Compound avg", "Compound var"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit one JSON document per episode")
	cmd.Flags().BoolVar(&allLines, "all-lines", false, "With --json, emit per-line sentiment instead of counts")
	cmd.Flags().Float64Var(&minFlag, "min", -1, "Exclusive lower sentiment bound (default from config)")
	cmd.Flags().Float64Var(&maxFlag, "max", 1, "Exclusive upper sentiment bound (default from config)")
	cmd.Flags().StringSliceVar(&speakers, "speakers", nil, "Speakers to count in JSON output (default from config)")
	return cmd
}

func newProfanityCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		speakers   []string
	)

	cmd := &cobra.Command{
		Use:   "profanity [files...]",
		Short: "Show per-speaker profanity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOutput {
				names := ctx.speakersOrDefault(speakers)
				docs := make([]report.ProfanityCountDoc, 0, len(list.Conversations))
				for _, conv := range list.Conversations {
					docs = append(docs, report.ProfanityCountSummary(conv, names))
				}
				return writeJSONLines(cmd, docs)
			}

			var rows [][]string
			for _, conv := range list.Conversations {
				for _, speaker := range conv.Speakers() {
					st := conv.ProfanityStats(speaker)
					rows = append(rows, []string{
						episodeLabel(conv.ID, conv.Title),
						speakerLabel(speaker),
						strconv.Itoa(st.ProfaneSentenceCount),
						strconv.Itoa(st.AllSentenceCount),
						formatFloat(st.ProbAverage),
						formatFloat(st.ProbVariance),
					})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Episode", "Speaker", "Profane", "Sentences", "Prob avg", "Prob var"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit one JSON document per episode")
	cmd.Flags().StringSliceVar(&speakers, "speakers", nil, "Speakers to count in JSON output (default from config)")
	return cmd
}

func newWordsCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		speakers   []string
	)

	cmd := &cobra.Command{
		Use:   "words [files...]",
		Short: "Show per-speaker word counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOutput {
				names := ctx.speakersOrDefault(speakers)
				docs := make([]report.WordCountDoc, 0, len(list.Conversations))
				for _, conv := range list.Conversations {
					docs = append(docs, report.WordCountSummary(conv, names))
				}
				return writeJSONLines(cmd, docs)
			}

			var rows [][]string
			for _, conv := range list.Conversations {
				summary := report.Summarize(conv)
				for _, sp := range summary.Speakers {
					rows = append(rows, []string{
						episodeLabel(conv.ID, conv.Title),
						speakerLabel(sp.Name),
						strconv.Itoa(conv.LineCount(sp.Name)),
						strconv.Itoa(sp.WordCount),
						formatPercent(sp.Share),
					})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Episode", "Speaker", "Lines", "Words", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit one JSON document per episode")
	cmd.Flags().StringSliceVar(&speakers, "speakers", nil, "Speakers to count in JSON output (default from config)")
	return cmd
}
