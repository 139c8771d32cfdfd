package tui

import (
	"fmt"
	"strings"

	"github.com/abscore/abscore/internal/domain/identity"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/charmbracelet/lipgloss"
)

// RenderIdentity shows the compared CDR3 region aligned against its
// reference, with the novelty score the identity earns.
func RenderIdentity(res identity.Result, strategy string) string {
	var b strings.Builder

	// ── Header box ──
	title := headerStyle.Render("CDR3 identity")
	pct := dimStyle.Render("n/a")
	var novelty float64
	if res.Percent != nil {
		novelty = scoring.ScoreNovelty(res.Percent)
		pct = lipgloss.NewStyle().
			Bold(true).
			Foreground(scoreColor(novelty)).
			Render(fmt.Sprintf("%.1f%%", *res.Percent))
	}
	stats := dimStyle.Render(fmt.Sprintf("strategy %s  ·  novelty %.1f/10  ·  ", strategy, novelty)) + qcLabel(res)
	b.WriteString(boxStyle.Render(title + "\n\n" + pct + "\n" + stats))
	b.WriteString("\n\n")

	// ── Alignment ──
	if res.Region == "" {
		b.WriteString("  " + dimStyle.Render("No CDR3 region could be compared.") + "\n\n")
		return b.String()
	}

	ref := strings.ToUpper(res.Reference)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("design", 10)), res.Region)
	fmt.Fprintf(&b, "  %s %s\n", padRight("", 10), matchLine(res.Region, ref))
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(padRight("reference", 10)), ref)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n\n", faintStyle.Render(fmt.Sprintf("offset %d in heavy chain", res.Offset)))
	return b.String()
}

// matchLine marks identical positions with | and mismatches with a dot.
func matchLine(a, b string) string {
	n := min(len(a), len(b))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			sb.WriteString(passStyle.Render("|"))
		} else {
			sb.WriteString(failStyle.Render("·"))
		}
	}
	return sb.String()
}

func qcLabel(res identity.Result) string {
	if res.QC {
		return passStyle.Render("qc ok")
	}
	return failStyle.Render("qc failed")
}
