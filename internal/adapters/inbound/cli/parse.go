package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/toolparse"
	"github.com/spf13/cobra"
)

// parseReport is the JSON shape of the parse command.
type parseReport struct {
	Tool    string            `json:"tool"`
	Metrics toolparse.Reading `json:"metrics"`
}

func newParseCmd() *cobra.Command {
	var files map[string]string

	cmd := &cobra.Command{
		Use:   "parse <tool> [file|-]",
		Short: "Extract metrics from a saved tool output",
		Long: "Run one of the built-in parsers over captured tool output. The text is read from the file " +
			"argument or stdin; declared output files are passed with --file name=path.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: toolparse.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := toolparse.Lookup(args[0])
			if err != nil {
				return err
			}

			out := domain.ToolOutput{Files: map[string]string{}}
			switch {
			case len(args) == 2 && args[1] != "-":
				data, err := os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[1], err)
				}
				out.Text = string(data)
			case len(args) == 2 || len(files) == 0:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				out.Text = string(data)
			}
			for name, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				out.Files[name] = string(data)
			}

			return renderJSON(cmd, parseReport{Tool: p.Name(), Metrics: p.Parse(out)})
		},
	}

	cmd.Flags().StringToStringVar(&files, "file", nil, "Declared output file as name=path (repeatable)")

	return cmd
}
