package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/abscore/abscore/internal/adapters/outbound/cache"
	"github.com/abscore/abscore/internal/adapters/outbound/gitinfo"
	"github.com/abscore/abscore/internal/adapters/outbound/history"
	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/adapters/outbound/submission"
	"github.com/abscore/abscore/internal/adapters/outbound/toolrunner"
	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain"
	"github.com/spf13/cobra"
)

// finalScoresFile is written inside each challenge submission.
const finalScoresFile = "final_scores.csv"

func newRunCmd(s settings) *cobra.Command {
	var (
		output      string
		format      string
		natives     map[string]string
		noCache     bool
		noHistory   bool
		skipTools   bool
		jsonOutput  bool
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Score every team submission under a root directory",
		Long: "Discover team folders and zip archives under root, run the configured tools on every design, " +
			"and write per-challenge metrics/final_scores.csv files plus one combined leaderboard.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(args)
			if err != nil {
				return err
			}
			cfg, err := s.loadConfig(root)
			if err != nil {
				return err
			}
			logger := slog.Default()

			runner := toolrunner.New(logger)
			if !skipTools {
				if _, err := application.NewPreflightService(runner).Require(cfg); err != nil {
					return fmt.Errorf("%w (run `abscore tools` for details)", err)
				}
			}

			opts := []application.ScoreOption{application.WithLogger(logger)}
			if !noCache {
				opts = append(opts, application.WithCache(cache.New(filepath.Join(root, cache.DefaultDir))))
			}
			scorer, err := application.NewScoreService(cfg, runner, submission.NewFASTAReader(), opts...)
			if err != nil {
				return err
			}

			var hist domain.RunHistory
			if !noHistory {
				h, err := history.Open(filepath.Join(root, history.DefaultPath))
				if err != nil {
					logger.Warn("run history unavailable", "error", err)
				} else {
					defer h.Close()
					hist = h
				}
			}

			source := submission.New(submission.WithNatives(natives), submission.WithLogger(logger))
			svc := application.NewRunService(source, scorer, hist, gitinfo.New(), application.WithRunLogger(logger))
			report, err := svc.Run(cmd.Context(), root)
			if err != nil {
				return err
			}

			for _, g := range report.Groups {
				if g.Dir == "" {
					continue
				}
				path := filepath.Join(g.Dir, submission.MetricsDir, finalScoresFile)
				if err := rowwriter.WriteFile(path, rowwriter.FormatCSV, g.Rows); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}

			combined := filepath.Join(root, output+"."+format)
			if err := rowwriter.WriteFile(combined, format, report.Rows); err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			if showSummary {
				if err := rowwriter.Write(cmd.OutOrStdout(), rowwriter.FormatTable, report.Rows); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nScored %d designs (%d viable). Best: %s/%s %.1f\nWrote %s\n",
				report.Summary.Designs, report.Summary.Viable,
				report.Summary.BestTeam, report.Summary.BestDesign, report.Summary.BestScore,
				combined)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "all_teams_scores", "Base name of the combined output file (no extension)")
	cmd.Flags().StringVar(&format, "format", rowwriter.FormatCSV, "Combined output format: csv, json, parquet, md or html")
	cmd.Flags().StringToStringVar(&natives, "native", nil, "Native complex per challenge for docking quality (e.g. challenge1=/refs/native.pdb)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Re-run tools even when inputs are unchanged")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the run in the history database")
	cmd.Flags().BoolVar(&skipTools, "skip-preflight", false, "Do not check that required tools resolve before starting")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run report as JSON")
	cmd.Flags().BoolVar(&showSummary, "table", true, "Print the ranked leaderboard")

	return cmd
}
