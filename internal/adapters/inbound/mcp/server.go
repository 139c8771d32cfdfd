package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abscore/abscore/internal/domain"
)

// NewAbscoreMCPServer creates an MCP server exposing design scoring, tool
// output parsing, CDR-H3 identity and run history. root is the submissions
// root whose history store is served; cfg supplies reference panels and tools.
func NewAbscoreMCPServer(root string, cfg domain.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"abscore",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s, root, cfg)

	return s
}
