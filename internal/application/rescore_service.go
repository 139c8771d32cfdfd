package application

import (
	"fmt"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/scoring"
)

// RescoreService recomputes scores from previously measured raw metrics,
// without invoking any external tool.
type RescoreService struct {
	source domain.MetricsSource
}

func NewRescoreService(source domain.MetricsSource) *RescoreService {
	return &RescoreService{source: source}
}

// Rescore reads measured designs from path and scores each of them.
func (s *RescoreService) Rescore(path string) ([]domain.ResultRow, error) {
	measured, err := s.source.ReadMetrics(path)
	if err != nil {
		return nil, fmt.Errorf("reading metrics: %w", err)
	}
	return ScoreMeasured(measured), nil
}

// ScoreMeasured scores already measured designs, preserving order.
func ScoreMeasured(measured []domain.MeasuredDesign) []domain.ResultRow {
	rows := make([]domain.ResultRow, 0, len(measured))
	for _, m := range measured {
		rows = append(rows, domain.NewResultRow(m.Design, m.Raw, scoring.ScoreDesign(m.Raw)))
	}
	return rows
}
