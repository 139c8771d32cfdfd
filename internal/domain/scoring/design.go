package scoring

import "github.com/abscore/abscore/internal/domain"

// ScoreDesign derives every score of one design from its raw metrics.
// It is a pure function: no state is shared between calls.
func ScoreDesign(raw domain.RawMetrics) domain.FinalScores {
	pm := PerMetric(raw)
	cat := Categories(raw, pm)
	final10 := FinalScore10(cat)

	fs := domain.FinalScores{
		PerMetric:     pm,
		Category:      cat,
		FinalScore10:  final10,
		FinalScore100: final10 * 10,
		IsViable:      true,
	}
	if ok, reason := Gate(raw); !ok {
		fs.IsViable = false
		fs.FailReason = &reason
	}
	return fs
}
