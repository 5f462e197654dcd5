package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"podstats/internal/config"
	"podstats/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		format   string
		outPath  string
		speakers []string
	)

	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Render a whole-corpus report",
		Long: "Render a whole-corpus report as text, json, yaml, markdown, html or pdf.\n\n" +
			"Text, json, yaml and markdown go to stdout unless --out is set. html and pdf\n" +
			"are written to --out, or to paths.output_dir/report.<ext> when omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if !cmd.Flags().Changed("format") {
				format = cfg.Report.Format
			}
			format = strings.ToLower(strings.TrimSpace(format))
			if !config.ValidReportFormat(format) {
				return fmt.Errorf("unsupported report format %q (valid: %s)", format, strings.Join(config.ReportFormats, ", "))
			}

			list, err := ctx.loadCorpus(cmd.Context(), args)
			if err != nil {
				return err
			}
			doc := report.Build(list, ctx.speakersOrDefault(speakers), time.Now())

			target := strings.TrimSpace(outPath)
			if target == "" && (format == report.FormatHTML || format == report.FormatPDF) {
				target = filepath.Join(cfg.Paths.OutputDir, "report"+report.Extension(format))
			}
			if target == "" {
				return report.Write(cmd.OutOrStdout(), doc, format)
			}

			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			var buf bytes.Buffer
			if err := report.Write(&buf, doc, format); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
				return fmt.Errorf("create report directory: %w", err)
			}
			if err := os.WriteFile(expanded, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report for %d episodes to %s\n", format, len(doc.Episodes), expanded)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format: text, json, yaml, markdown, html, pdf (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to this file")
	cmd.Flags().StringSliceVar(&speakers, "speakers", nil, "Speakers to total (default from config)")
	return cmd
}
