package toolparse

import (
	"regexp"

	"github.com/abscore/abscore/internal/domain"
)

// DockQ reads the DockQ similarity of a model to the native complex.
type DockQ struct{}

var dockqScore = Field{
	Metric: DockingQuality,
	Label:  "DockQ",
	Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)DockQ\s*[=:]\s*([0-9]*\.[0-9]+)`),
		regexp.MustCompile(`(?im)^DockQ\s+([0-9]*\.[0-9]+)`),
	},
	Min:      0,
	Max:      1,
	AnyToken: true,
}

func (DockQ) Name() string { return domain.ToolDockQ }

func (DockQ) Metrics() []Metric { return []Metric{DockingQuality} }

func (DockQ) Parse(out domain.ToolOutput) Reading {
	return ExtractAll(out.Text, dockqScore)
}
