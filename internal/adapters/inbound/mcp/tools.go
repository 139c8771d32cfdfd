package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abscore/abscore/internal/adapters/outbound/rowwriter"
	"github.com/abscore/abscore/internal/adapters/outbound/toolrunner"
	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/identity"
	"github.com/abscore/abscore/internal/domain/leaderboard"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/abscore/abscore/internal/domain/toolparse"
)

// metricArgs lists the numeric arguments of abscore_score_metrics.
var metricArgs = []struct {
	name string
	desc string
}{
	{"binding_energy", "Binding free energy ΔG in kcal/mol"},
	{"contacts", "Intermolecular contact count"},
	{"docking_quality", "DockQ against the native complex (0-1)"},
	{"interface_residue", "Interface residue confidence (0-100)"},
	{"interface_confidence", "Predicted interface confidence, ipSAE (0-1)"},
	{"paratope_area", "Buried paratope area in Å²"},
	{"solubility", "Predicted solubility (0-1)"},
	{"cdr3_identity", "CDR-H3 identity to the closest reference, in percent"},
}

// registerTools registers all abscore MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	// 1. abscore_score_metrics
	opts := []mcplib.ToolOption{
		mcplib.WithDescription("Scores one design from raw metric values. Omitted metrics are absent, not zero. Returns the full result row."),
		mcplib.WithString("team", mcplib.Description("Team name")),
		mcplib.WithString("design_id", mcplib.Description("Design identifier")),
		mcplib.WithString("challenge", mcplib.Description("Challenge identifier")),
	}
	for _, m := range metricArgs {
		opts = append(opts, mcplib.WithNumber(m.name, mcplib.Description(m.desc)))
	}
	s.AddTool(mcplib.NewTool("abscore_score_metrics", opts...), handleScoreMetrics())

	// 2. abscore_parse_output
	s.AddTool(
		mcplib.NewTool("abscore_parse_output",
			mcplib.WithDescription("Extracts metrics from captured tool output using a built-in parser ("+strings.Join(toolparse.Names(), ", ")+")"),
			mcplib.WithString("tool", mcplib.Required(), mcplib.Description("Parser name")),
			mcplib.WithString("text", mcplib.Description("Combined stdout and stderr of the tool")),
			mcplib.WithObject("files", mcplib.Description("Declared output files as name to content")),
		),
		handleParseOutput(),
	)

	// 3. abscore_cdr3_identity
	s.AddTool(
		mcplib.NewTool("abscore_cdr3_identity",
			mcplib.WithDescription("Compares a heavy chain's CDR-H3 against a challenge's reference panel and returns identity and novelty score"),
			mcplib.WithString("challenge", mcplib.Required(), mcplib.Description("Challenge whose reference panel is used")),
			mcplib.WithString("heavy_chain", mcplib.Description("Heavy chain sequence")),
			mcplib.WithString("fasta", mcplib.Description("FASTA text; the heavy chain is picked from its headers")),
			mcplib.WithString("strategy", mcplib.Description("window or motif (default from config)")),
		),
		handleIdentity(cfg),
	)

	// 4. abscore_rescore_csv
	s.AddTool(
		mcplib.NewTool("abscore_rescore_csv",
			mcplib.WithDescription("Scores every row of a raw metrics CSV and returns the ranked result rows"),
			mcplib.WithString("path", mcplib.Required(), mcplib.Description("Path to the metrics CSV")),
			mcplib.WithBoolean("best_per_team", mcplib.Description("Only return each team's best design")),
		),
		handleRescore(),
	)

	// 5. abscore_tools
	s.AddTool(
		mcplib.NewTool("abscore_tools",
			mcplib.WithDescription("Reports which configured external tools are installed"),
		),
		handleTools(cfg),
	)
}

func handleScoreMetrics() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		num := func(name string) *float64 {
			v, ok := args[name].(float64)
			if !ok {
				return nil
			}
			return &v
		}

		raw := domain.RawMetrics{
			BindingEnergy:       num("binding_energy"),
			DockingQuality:      num("docking_quality"),
			InterfaceResidue:    num("interface_residue"),
			InterfaceConfidence: num("interface_confidence"),
			ParatopeArea:        num("paratope_area"),
			Solubility:          num("solubility"),
			CDR3Identity:        num("cdr3_identity"),
		}
		if c := num("contacts"); c != nil {
			if *c != float64(int(*c)) || *c < 0 {
				return errorResult(fmt.Sprintf("contacts must be a non-negative integer, got %v", *c)), nil
			}
			raw.Contacts = domain.Int(int(*c))
		}

		design := domain.DesignInput{
			Team:      request.GetString("team", ""),
			DesignID:  request.GetString("design_id", ""),
			Challenge: strings.ToLower(request.GetString("challenge", "")),
		}
		return jsonResult(domain.NewResultRow(design, raw, scoring.ScoreDesign(raw)))
	}
}

func handleParseOutput() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("tool")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, err := toolparse.Lookup(name)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		out := domain.ToolOutput{Text: request.GetString("text", ""), Files: map[string]string{}}
		if files, ok := request.GetArguments()["files"].(map[string]any); ok {
			for k, v := range files {
				s, ok := v.(string)
				if !ok {
					return errorResult(fmt.Sprintf("files.%s must be a string", k)), nil
				}
				out.Files[k] = s
			}
		}

		return jsonResult(map[string]any{
			"tool":    p.Name(),
			"metrics": p.Parse(out),
		})
	}
}

func handleIdentity(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		challenge, err := request.RequireString("challenge")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		panel, err := cfg.Panel(challenge)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		heavy := strings.ToUpper(strings.TrimSpace(request.GetString("heavy_chain", "")))
		if heavy == "" {
			fasta := request.GetString("fasta", "")
			if fasta == "" {
				return errorResult("one of heavy_chain or fasta is required"), nil
			}
			records, err := identity.ParseFASTA(strings.NewReader(fasta))
			if err != nil {
				return errorResult(fmt.Sprintf("parsing fasta: %v", err)), nil
			}
			heavy = identity.HeavyChain(records)
		}

		strategy := request.GetString("strategy", cfg.Novelty.Strategy)
		analyzer, err := identity.NewAnalyzer(strategy)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		res := analyzer.Identity(heavy, panel)

		return jsonResult(map[string]any{
			"challenge":     strings.ToLower(challenge),
			"strategy":      strategy,
			"result":        res,
			"novelty_score": scoring.ScoreNovelty(res.Percent),
		})
	}
}

func handleRescore() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rows, err := application.NewRescoreService(rowwriter.NewCSVSource()).Rescore(path)
		if err != nil {
			return errorResult(fmt.Sprintf("rescoring failed: %v", err)), nil
		}
		if request.GetBool("best_per_team", false) {
			return jsonResult(leaderboard.BestPerTeam(rows))
		}
		return jsonResult(leaderboard.Rank(rows))
	}
}

func handleTools(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		statuses := application.NewPreflightService(toolrunner.New(slog.Default())).Check(cfg)
		return jsonResult(statuses)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return textResult(string(data)), nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
