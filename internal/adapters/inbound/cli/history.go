package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abscore/abscore/internal/adapters/outbound/history"
	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit      int
		runID      int64
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history [root]",
		Short: "Show previous scoring runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(args)
			if err != nil {
				return err
			}
			path := filepath.Join(root, history.DefaultPath)
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				if jsonOutput {
					return renderJSON(cmd, []any{})
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(nil))
				return nil
			}

			h, err := history.Open(path)
			if err != nil {
				return err
			}
			defer h.Close()

			if runID > 0 {
				rows, err := h.Rows(runID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return renderJSON(cmd, rows)
				}
				return rowwriter.Write(cmd.OutOrStdout(), rowwriter.FormatTable, rows)
			}

			runs, err := h.List(limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, runs)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show (0 for all)")
	cmd.Flags().Int64Var(&runID, "run", 0, "Show the scored rows of one run")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
