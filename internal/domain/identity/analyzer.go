package identity

import (
	"fmt"

	"github.com/abscore/abscore/internal/domain"
)

// Result is the outcome of comparing a heavy chain against a reference panel.
// Percent is nil when no comparison could be made. QC reports whether the
// comparison ran on a trustworthy region.
type Result struct {
	Percent   *float64 `json:"identity"`
	QC        bool     `json:"qc"`
	Reference string   `json:"reference,omitempty"`
	Offset    int      `json:"offset"`
	Region    string   `json:"region,omitempty"`
}

// Analyzer measures how close a heavy chain's CDR3 is to known references.
type Analyzer interface {
	Identity(heavy string, refs []string) Result
}

// NewAnalyzer returns the analyzer for a configured strategy.
func NewAnalyzer(strategy string) (Analyzer, error) {
	switch strategy {
	case domain.StrategyWindow, "":
		return WindowAnalyzer{}, nil
	case domain.StrategyMotif:
		return MotifAnalyzer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown identity strategy %q", domain.ErrConfiguration, strategy)
	}
}

// positionalIdentity counts equal residues at equal positions over the first
// n residues of a and b and returns the percentage of n.
func positionalIdentity(a, b string, n int) float64 {
	if n <= 0 {
		return 0
	}
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return 100 * float64(matches) / float64(n)
}
