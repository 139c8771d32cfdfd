package toolparse

import (
	"regexp"

	"github.com/abscore/abscore/internal/domain"
)

// Prodigy reads predicted binding affinity and the intermolecular contact
// count from PRODIGY's report, e.g.
//
//	[++] No. of intermolecular contacts: 245
//	[++] Predicted binding affinity (kcal.mol-1):    -21.4
type Prodigy struct{}

var (
	prodigyContacts = Field{
		Metric: Contacts,
		Label:  "intermolecular contacts",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)No\.\s*of\s+intermolecular\s+contacts?\s*:\s*(\d+)`),
			regexp.MustCompile(`(?i)intermolecular\s+contacts?\s*:\s*(\d+)`),
		},
		Min:     0,
		Max:     1e6,
		Integer: true,
	}

	prodigyEnergy = Field{
		Metric: BindingEnergy,
		Label:  "binding affinity",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Predicted\s+binding\s+affinity\s*\([^)]*\)\s*:\s*([-+]?\d+\.?\d*)`),
			regexp.MustCompile(`(?i)binding\s+affinity[^:\n]*:\s*([-+]?\d+\.?\d*)`),
			regexp.MustCompile(`(?i)Delta\s*G[^:\n]*:\s*([-+]?\d+\.?\d*)`),
			regexp.MustCompile(`(?i)ΔG[^:\n]*:\s*([-+]?\d+\.?\d*)`),
		},
		Min: -100,
		Max: 100,
	}
)

func (Prodigy) Name() string { return domain.ToolProdigy }

func (Prodigy) Metrics() []Metric { return []Metric{BindingEnergy, Contacts} }

func (Prodigy) Parse(out domain.ToolOutput) Reading {
	return ExtractAll(out.Text, prodigyEnergy, prodigyContacts)
}
