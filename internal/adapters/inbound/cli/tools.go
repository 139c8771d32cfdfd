package cli

import (
	"fmt"
	"log/slog"

	"github.com/abscore/abscore/internal/adapters/outbound/toolrunner"
	"github.com/abscore/abscore/internal/adapters/outbound/tui"
	"github.com/abscore/abscore/internal/application"
	"github.com/spf13/cobra"
)

func newToolsCmd(s settings) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tools [root]",
		Short: "Check that the configured external tools are installed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(args)
			if err != nil {
				return err
			}
			cfg, err := s.loadConfig(root)
			if err != nil {
				return err
			}

			statuses, reqErr := application.NewPreflightService(toolrunner.New(slog.Default())).Require(cfg)
			if jsonOutput {
				if err := renderJSON(cmd, statuses); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreflight(statuses))
			}
			return reqErr
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
