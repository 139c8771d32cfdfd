package toolparse

import (
	"encoding/csv"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// NetSolP reads the predicted solubility from NetSolP's prediction CSV.
type NetSolP struct{}

// NetSolPPredictionsFile is the output file key expected in ToolOutput.Files.
const NetSolPPredictionsFile = "predictions"

var netsolpText = Field{
	Metric: Solubility,
	Label:  "solubility",
	Patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)solubility[^:=\n]*[=:]\s*([0-9]*\.?[0-9]+)`),
	},
	Min: 0,
	Max: 1,
}

func (NetSolP) Name() string { return domain.ToolNetSolP }

func (NetSolP) Metrics() []Metric { return []Metric{Solubility} }

func (NetSolP) Parse(out domain.ToolOutput) Reading {
	if body, ok := out.File(NetSolPPredictionsFile); ok {
		if v, ok := ParseNetSolPCSV(body); ok {
			return Reading{Solubility: v}
		}
	}
	return ExtractAll(out.Text, netsolpText)
}

// ParseNetSolPCSV returns the largest probability in [0,1] found in the
// first data row. Non-numeric cells such as the sequence ID are skipped.
func ParseNetSolPCSV(body string) (float64, bool) {
	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err != nil {
		return 0, false
	}
	row, err := r.Read()
	if err != nil {
		return 0, false
	}
	var (
		best  float64
		found bool
	)
	for _, cell := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}
