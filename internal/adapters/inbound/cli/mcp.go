package cli

import (
	mcpadapter "github.com/abscore/abscore/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(s settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the abscore MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(s))
	return cmd
}

func newMCPServeCmd(s settings) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the abscore MCP server (stdio)",
		Long: "Start the abscore MCP server using stdio transport, exposing metric scoring, tool output " +
			"parsing, CDR-H3 identity and run history to AI assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := absDir([]string{root})
			if err != nil {
				return err
			}
			cfg, err := s.loadConfig(dir)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewAbscoreMCPServer(dir, cfg))
		},
	}

	cmd.Flags().StringVar(&root, "path", ".", "Submissions root holding .abscore.yaml and run history")

	return cmd
}
