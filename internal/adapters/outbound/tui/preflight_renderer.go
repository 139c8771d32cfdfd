package tui

import (
	"fmt"
	"strings"

	"github.com/abscore/abscore/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderPreflight renders tool availability as a styled TUI string.
func RenderPreflight(statuses []domain.ToolStatus) string {
	var b strings.Builder

	available, missingRequired := 0, 0
	for _, st := range statuses {
		if st.Available {
			available++
		} else if st.Required {
			missingRequired++
		}
	}

	// Header
	countStyle := passStyle
	if missingRequired > 0 {
		countStyle = failStyle
	} else if available < len(statuses) {
		countStyle = warnStyle
	}
	title := titleStyle.Render("Tool preflight")
	counts := countStyle.Bold(true).Render(fmt.Sprintf("%d/%d available", available, len(statuses)))
	b.WriteString(boxStyle.Render(title + "  " + counts))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		sectionHeaderStyle.Render("Tools"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(statuses))),
	))
	for _, st := range statuses {
		renderToolStatus(&b, st)
	}

	// Footer
	if missingRequired > 0 {
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render("Install the missing required tools or point tools.<name>.command at them in .abscore.yaml."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderToolStatus(b *strings.Builder, st domain.ToolStatus) {
	name := padRight(st.Tool, 12)
	tag := ""
	if st.Required {
		tag = "  " + warnStyle.Render("required")
	}

	if st.Available {
		fmt.Fprintf(b, "    %s %s %s%s\n", passStyle.Render("●"), name, dimStyle.Render(st.Path), tag)
		return
	}

	icon := skipStyle.Render("○")
	if st.Required {
		icon = failStyle.Render("●")
	}
	fmt.Fprintf(b, "    %s %s %s%s\n", icon, name, faintStyle.Render(st.Command+" not found"), tag)
}
