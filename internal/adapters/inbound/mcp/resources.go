package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abscore/abscore/internal/adapters/outbound/history"
	"github.com/abscore/abscore/internal/domain"
)

const runsURI = "abscore://runs"

// registerResources registers all abscore MCP resources on the given server.
func registerResources(s *server.MCPServer, root string, cfg domain.Config) {
	// 1. abscore://config - effective scoring configuration
	s.AddResource(
		mcplib.NewResource(
			"abscore://config",
			"Scoring Config",
			mcplib.WithResourceDescription("Effective tool, reference panel and novelty configuration"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(cfg),
	)

	// 2. abscore://runs - run history
	s.AddResource(
		mcplib.NewResource(
			runsURI,
			"Run History",
			mcplib.WithResourceDescription("Summaries of previous scoring runs, newest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRunsResource(root),
	)

	// 3. abscore://runs/{id} - scored rows of one run (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			runsURI+"/{id}",
			"Run Rows",
			mcplib.WithTemplateDescription("Every scored design of one run"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleRunRowsResource(root),
	)
}

func handleConfigResource(cfg domain.Config) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, cfg)
	}
}

func handleRunsResource(root string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		h, err := openHistory(root)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return jsonContents(request.Params.URI, []domain.RunSummary{})
		}
		defer h.Close()

		runs, err := h.List(0)
		if err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		return jsonContents(request.Params.URI, runs)
	}
}

func handleRunRowsResource(root string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		idText := strings.TrimPrefix(request.Params.URI, runsURI+"/")
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid run id %q", idText)
		}

		h, err := openHistory(root)
		if err != nil {
			return nil, err
		}
		if h == nil {
			return nil, fmt.Errorf("run %d not found: no history under %s", id, root)
		}
		defer h.Close()

		rows, err := h.Rows(id)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, rows)
	}
}

// openHistory opens the history store under root, or returns nil when no
// run has been recorded yet.
func openHistory(root string) (*history.SQLiteHistory, error) {
	path := filepath.Join(root, history.DefaultPath)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return history.Open(path)
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
