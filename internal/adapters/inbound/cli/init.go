package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abscore/abscore/internal/adapters/outbound/config"
	"github.com/abscore/abscore/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)


func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " with the competition defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := absDir(args)
			if err != nil {
				return err
			}
			dest := filepath.Join(dir, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			content, err := generateConfig()
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, content, 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)

	return cmd
}

func generateConfig() ([]byte, error) {
	body, err := yaml.Marshal(domain.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	var header strings.Builder
	header.WriteString("# abscore configuration\n")
	header.WriteString("# Tool args, dir and outputs are templates over:\n#  ")
	for _, v := range domain.TemplateVars {
		header.WriteString(" {" + v + "}")
	}
	header.WriteString("\n# Set a tool to ~ to disable it.\n\n")
	return append([]byte(header.String()), body...), nil
}
