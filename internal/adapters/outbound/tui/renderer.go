package tui

import (
	"fmt"
	"strings"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	lime      = lipgloss.Color("#A3E635")
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

type metricLine struct {
	name  string
	raw   string
	score float64
}

// RenderScorecard formats one scored design for terminal output.
func RenderScorecard(row domain.ResultRow) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("abscore")
	subtitle := dimStyle.Render("Antibody Design Score")
	if row.DesignID != "" {
		subtitle += "\n" + dimStyle.Render(designLabel(row))
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(row.FinalScore10)).
		Render(fmt.Sprintf("%.1f / 100", row.FinalScore100))
	verdict := passStyle.Bold(true).Render("VIABLE")
	if !row.IsViable {
		verdict = failStyle.Bold(true).Render("NOT VIABLE")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdict))
	b.WriteString("\n\n")

	// ── Categories ──
	renderCategory(&b, "Binding & structure", row.BindingStructuralScore, scoring.WeightBinding, []metricLine{
		{"binding_energy", optRaw(row.BindingEnergy, "%.2f kcal/mol"), row.BindingEnergyScore},
		{"contacts", optCount(row.Contacts), row.ContactsScore},
		{"docking_quality", optRaw(row.DockingQuality, "%.3f"), row.DockingQualityScore},
		{"interface_confidence", optRaw(row.InterfaceConfidence, "%.3f"), row.InterfaceConfidenceScore},
		{"interface_residue", optRaw(row.InterfaceResidue, "%.1f"), row.InterfaceResidueScore},
		{"paratope_area", optRaw(row.ParatopeArea, "%.0f Å²"), row.ParatopeAreaScore},
	})
	b.WriteString("\n")
	renderCategory(&b, "Developability", row.DevelopabilityScore, scoring.WeightDevelopability, []metricLine{
		{"solubility", optRaw(row.Solubility, "%.3f"), row.SolubilityScore},
	})
	b.WriteString("\n")
	renderCategory(&b, "Novelty", row.NoveltyCategoryScore, scoring.WeightNovelty, []metricLine{
		{"cdr3_identity", identityRaw(row), row.NoveltyScore},
	})

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Gate ──
	if row.FailReason != nil {
		b.WriteString("  " + failStyle.Render("✗ "+*row.FailReason) + "\n")
	} else {
		b.WriteString("  " + passStyle.Render("✓ Passes all viability gates.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, name string, score, weight float64, metrics []metricLine) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%4.1f", score))
	bar := coloredBar(score, 20)
	w := dimStyle.Render(fmt.Sprintf("%d%%", int(weight*100+0.5)))

	fmt.Fprintf(b, "  %s %s  %s %s\n", catNameStyle.Render(padRight(name, 20)), bar, scoreText, w)

	for _, m := range metrics {
		renderMetric(b, m)
	}
}

func renderMetric(b *strings.Builder, m metricLine) {
	name := padRight(m.name, 24)
	if m.raw == "" {
		fmt.Fprintf(b, "    %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("absent"),
		)
		return
	}

	var icon string
	switch {
	case m.score >= 8:
		icon = passStyle.Render("●")
	case m.score >= 4:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}
	fmt.Fprintf(b, "    %s %s %s  %s\n", icon, name, padRight(m.raw, 18), dimStyle.Render(fmt.Sprintf("%.1f/10", m.score)))
}

func designLabel(row domain.ResultRow) string {
	parts := []string{}
	if row.Team != "" {
		parts = append(parts, row.Team)
	}
	parts = append(parts, row.DesignID)
	label := strings.Join(parts, " / ")
	if row.Challenge != "" {
		label += " · " + row.Challenge
	}
	return label
}

func optRaw(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}

func optCount(v *int64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func identityRaw(row domain.ResultRow) string {
	if row.CDR3Identity == nil {
		return ""
	}
	s := fmt.Sprintf("%.1f%%", *row.CDR3Identity)
	if row.IdentityQC != nil && !*row.IdentityQC {
		s += " (qc)"
	}
	return s
}

// coloredBar draws a 0-10 score as a bar of the given width.
func coloredBar(score float64, width int) string {
	filled := max(0, min(int(score*float64(width)/10+0.5), width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

// scoreColor maps a 0-10 score to a colour.
func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 8:
		return success
	case score >= 6:
		return lime
	case score >= 4:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// RenderHistory formats stored runs, newest first, for terminal output.
func RenderHistory(runs []domain.RunSummary) string {
	if len(runs) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 64)) + "\n\n")

	for i, r := range runs {
		hash := r.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		best := lipgloss.NewStyle().
			Foreground(scoreColor(r.BestScore / 10)).
			Render(fmt.Sprintf("%5.1f", r.BestScore))

		line := fmt.Sprintf("  %s  %s  #%-3d %s  %s  %s",
			dimStyle.Render(r.StartedAt.Format("2006-01-02 15:04")),
			faintStyle.Render(hash),
			r.ID,
			dimStyle.Render(fmt.Sprintf("%3d designs %3d viable", r.Designs, r.Viable)),
			best,
			r.BestTeam+"/"+r.BestDesign,
		)

		if i+1 < len(runs) {
			diff := r.BestScore - runs[i+1].BestScore
			if diff > 0.05 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < -0.05 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
