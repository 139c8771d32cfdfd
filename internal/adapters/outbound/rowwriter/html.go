package rowwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/leaderboard"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderMarkdown builds the leaderboard report: a summary, the best design
// of each team, and every row.
func renderMarkdown(rows []domain.ResultRow) string {
	var b strings.Builder
	b.WriteString("# Antibody design leaderboard\n\n")

	viable := 0
	for _, r := range rows {
		if r.IsViable {
			viable++
		}
	}
	fmt.Fprintf(&b, "%s designs scored, %s viable.\n\n", printer.Sprintf("%d", len(rows)), printer.Sprintf("%d", viable))

	if len(rows) > 0 {
		b.WriteString("## Best design per team\n\n")
		writeMarkdownTable(&b, leaderboard.BestPerTeam(rows))
		b.WriteString("\n## All designs\n\n")
		writeMarkdownTable(&b, rows)
	}
	return b.String()
}

func writeMarkdownTable(b *strings.Builder, rows []domain.ResultRow) {
	b.WriteString("| Rank | Team | Design | Challenge | Binding | Developability | Novelty | Score | Status |\n")
	b.WriteString("|---:|---|---|---|---:|---:|---:|---:|---|\n")
	for i, r := range rows {
		status := "viable"
		if !r.IsViable {
			status = "not viable"
			if r.FailReason != nil {
				status = *r.FailReason
			}
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1,
			escapeCell(r.Team),
			escapeCell(r.DesignID),
			escapeCell(r.Challenge),
			number(r.BindingStructuralScore, 2),
			number(r.DevelopabilityScore, 2),
			number(r.NoveltyCategoryScore, 2),
			number(r.FinalScore100, 1),
			escapeCell(status),
		)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// writeHTML renders the markdown report to a standalone HTML page.
func writeHTML(w io.Writer, rows []domain.ResultRow) error {
	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(renderMarkdown(rows)), &content); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}

	_, err := fmt.Fprintf(w, htmlPage, content.String())
	return err
}

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Antibody design leaderboard</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1f2937; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #d1d5db; padding: 0.3rem 0.6rem; }
th { background: #f3f4f6; }
</style>
</head>
<body>
%s</body>
</html>
`
