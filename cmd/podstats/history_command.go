package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"podstats/internal/store"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect ingested episodes",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryRemoveCommand(ctx))
	historyCmd.AddCommand(newHistoryRunsCommand(ctx))
	return historyCmd
}

func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func parseEpisodeArg(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid episode id %q", raw)
	}
	return id, nil
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				episodes, err := st.ListEpisodes(cmd.Context())
				if err != nil {
					return err
				}
				if output != "" {
					if episodes == nil {
						episodes = []*store.Episode{}
					}
					return writeStructured(cmd, output, episodes)
				}
				out := cmd.OutOrStdout()
				if len(episodes) == 0 {
					fmt.Fprintln(out, "No episodes stored")
					return nil
				}
				rows := make([][]string, 0, len(episodes))
				for _, ep := range episodes {
					rows = append(rows, []string{
						strconv.Itoa(ep.ID),
						ep.Title,
						ep.Date,
						strconv.Itoa(ep.LineCount),
						strconv.Itoa(ep.WordCount),
						ep.IngestedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Episode", "Title", "Date", "Lines", "Words", "Ingested"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Machine-readable output: json or yaml")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <episode>",
		Short: "Show stored per-speaker stats for an episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEpisodeArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(st *store.Store) error {
				ep, err := st.GetEpisode(cmd.Context(), id)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("episode %d is not stored", id)
				}
				if err != nil {
					return err
				}
				stats, err := st.SpeakerStats(cmd.Context(), id)
				if err != nil {
					return err
				}
				if output != "" {
					return writeStructured(cmd, output, struct {
						Episode  *store.Episode       `json:"episode" yaml:"episode"`
						Speakers []store.SpeakerStats `json:"speakers" yaml:"speakers"`
					}{ep, stats})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", episodeLabel(ep.ID, ep.Title), ep.Date)
				rows := make([][]string, 0, len(stats))
				for _, s := range stats {
					rows = append(rows, []string{
						speakerLabel(s.Speaker),
						strconv.Itoa(s.WordCount),
						formatFloat(s.CompoundAverage),
						formatFloat(s.CompoundVariance),
						formatFloat(s.ProfanityProbAverage),
						fmt.Sprintf("%d/%d", s.ProfaneSentenceCount, s.SentenceCount),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Speaker", "Words", "Sentiment", "Variance", "Profanity", "Profane"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Machine-readable output: json or yaml")
	return cmd
}

func newHistoryRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <episode>",
		Short: "Delete a stored episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEpisodeArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(st *store.Store) error {
				if err := st.Remove(cmd.Context(), id); err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("episode %d is not stored", id)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed episode %d\n", id)
				return nil
			})
		},
	}
}

func newHistoryRunsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List ingest runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				runs, err := st.ListRuns(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No ingest runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{run.ID, run.StartedAt.Local().Format(time.DateTime), run.SourceDir})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "Started", "Source"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
