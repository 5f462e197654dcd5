package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"podstats/internal/classifier"
	"podstats/internal/logging"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var (
		speakers   []string
		testSize   int
		seed       int64
		top        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Train a speaker classifier and report its accuracy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if !cmd.Flags().Changed("test-size") {
				testSize = cfg.Classifier.TestSize
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Classifier.Seed
			}
			names := ctx.speakersOrDefault(speakers)
			if len(names) < 2 {
				return fmt.Errorf("classify needs at least two speakers, got %v", names)
			}

			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
			res, err := classifier.Summary(list, names, testSize, rng, classifier.Options{
				VocabSize:     cfg.Classifier.VocabSize,
				LongLineWords: cfg.Analysis.LongLineWords,
				TopFeatures:   top,
			})
			if err != nil {
				return err
			}
			logging.NewComponentLogger(logger, "classifier").Info("classifier evaluated",
				logging.Int("train", res.TrainSize),
				logging.Int("test", res.TestSize),
				logging.Float64("accuracy", res.Accuracy),
			)
			if jsonOutput {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Most Informative Features")
			rows := make([][]string, 0, len(res.Informative))
			for _, f := range res.Informative {
				rows = append(rows, []string{
					f.Name,
					f.Value,
					fmt.Sprintf("%s : %s", f.Best, f.Worst),
					fmt.Sprintf("%.1f : 1.0", f.Ratio),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Feature", "Value", "Labels", "Ratio"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "Trained on %d lines, tested on %d\n", res.TrainSize, res.TestSize)
			fmt.Fprintf(out, "Accuracy: %.4f\n", res.Accuracy)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&speakers, "speakers", nil, "Speakers to classify (default from config)")
	cmd.Flags().IntVar(&testSize, "test-size", classifier.DefaultTestSize, "Lines held out for testing (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Shuffle seed (default from config)")
	cmd.Flags().IntVar(&top, "top", classifier.DefaultTopFeatures, "Number of informative features to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the evaluation as JSON")
	return cmd
}
