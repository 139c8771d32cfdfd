package toolparse

import (
	"bufio"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// IPSAE reads interface confidence and the interface residue score from
// ipSAE's output files. The score table has one row per chain pair and
// type; rows of type "max" carry the ipSAE value in the sixth column:
//
//	Chn1 Chn2 PAE Dist Type ipSAE ...
//	A    B    10  10   max  0.812 ...
//
// The by-residue table carries a per-residue confidence in its sixth column.
type IPSAE struct{}

// Output file keys expected in ToolOutput.Files.
const (
	IPSAEScoresFile = "scores"
	IPSAEByResFile  = "byres"
)

var (
	ipsaeText = Field{
		Metric: InterfaceConfidence,
		Label:  "ipSAE",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ipSAE\s*(?:score)?\s*[=:]\s*([0-9]*\.?[0-9]+)`),
		},
		Min: 0,
		Max: 1,
	}
	ipsaeResidueText = Field{
		Metric: InterfaceResidue,
		Label:  "interface pLDDT",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)interface\s+pLDDT\s*[=:]\s*([0-9]*\.?[0-9]+)`),
		},
		Min: 0,
		Max: 100,
	}
)

func (IPSAE) Name() string { return domain.ToolIPSAE }

func (IPSAE) Metrics() []Metric { return []Metric{InterfaceConfidence, InterfaceResidue} }

func (IPSAE) Parse(out domain.ToolOutput) Reading {
	r := ExtractAll(out.Text, ipsaeText, ipsaeResidueText)
	if body, ok := out.File(IPSAEScoresFile); ok {
		if v, ok := ParseIPSAEScores(body); ok {
			r[InterfaceConfidence] = v
		}
	}
	if body, ok := out.File(IPSAEByResFile); ok {
		if v, ok := ParseIPSAEByRes(body); ok {
			r[InterfaceResidue] = v
		}
	}
	return r
}

// ParseIPSAEScores returns the minimum ipSAE across the "max" rows of the
// score table. Comment lines and values outside [0,1] are ignored.
func ParseIPSAEScores(body string) (float64, bool) {
	var (
		best  float64
		found bool
	)
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 6 || !strings.EqualFold(parts[4], "max") {
			continue
		}
		v, err := strconv.ParseFloat(parts[5], 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
			continue
		}
		if !found || v < best {
			best, found = v, true
		}
	}
	return best, found
}

// ParseIPSAEByRes returns the mean of the sixth column of the by-residue
// table over values in (0, 100]. The first line is a header. Zero values
// mark residues without a confidence (e.g. crystal structures) and are
// skipped; a table with none left yields no value.
func ParseIPSAEByRes(body string) (float64, bool) {
	var (
		sum float64
		n   int
	)
	sc := bufio.NewScanner(strings.NewReader(body))
	first := true
	for sc.Scan() {
		if first {
			first = false
			continue
		}
		parts := strings.Fields(sc.Text())
		if len(parts) < 6 {
			continue
		}
		v, err := strconv.ParseFloat(parts[5], 64)
		if err != nil || math.IsNaN(v) || v <= 0 || v > 100 {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
