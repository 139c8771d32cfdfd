package cli

import (
	"fmt"

	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain/leaderboard"
	"github.com/spf13/cobra"
)

func newRescoreCmd() *cobra.Command {
	var (
		output string
		format string
		rank   bool
	)

	cmd := &cobra.Command{
		Use:   "rescore <metrics.csv>",
		Short: "Score designs from a CSV of raw metrics",
		Long: "Read team_name, design_id and raw metric columns from a CSV (empty cells are absent values) " +
			"and score every row without running any tool.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := application.NewRescoreService(rowwriter.NewCSVSource()).Rescore(args[0])
			if err != nil {
				return err
			}
			if rank {
				rows = leaderboard.Rank(rows)
			}

			if output == "" {
				return rowwriter.Write(cmd.OutOrStdout(), format, rows)
			}
			f := formatForPath(output, format, cmd.Flags().Changed("format"))
			if err := rowwriter.WriteFile(output, f, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scored designs to %s\n", len(rows), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write scored rows to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", rowwriter.FormatTable, "Output format: table, csv, json, parquet, md or html")
	cmd.Flags().BoolVar(&rank, "rank", false, "Order rows by viability and score")

	return cmd
}
