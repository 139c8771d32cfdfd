package cli

import (
	"fmt"
	"path/filepath"

	"github.com/abscore/abscore/internal/adapters/outbound/cache"
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached tool measurements",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear [root]",
		Short: "Delete cached measurements under root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absDir(args)
			if err != nil {
				return err
			}
			if err := cache.New(filepath.Join(root, cache.DefaultDir)).Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	})
	return cmd
}
