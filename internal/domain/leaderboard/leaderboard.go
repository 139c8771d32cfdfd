package leaderboard

import (
	"errors"
	"sort"
	"time"

	"github.com/abscore/abscore/internal/domain"
)

// Rank orders result rows for display: viable designs first, then by final
// score descending. Ties fall back to team and design so the order is stable
// across runs. The input slice is not modified.
func Rank(rows []domain.ResultRow) []domain.ResultRow {
	out := make([]domain.ResultRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b domain.ResultRow) bool {
	if a.IsViable != b.IsViable {
		return a.IsViable
	}
	if a.FinalScore100 != b.FinalScore100 {
		return a.FinalScore100 > b.FinalScore100
	}
	if a.Team != b.Team {
		return a.Team < b.Team
	}
	return a.DesignID < b.DesignID
}

// Best returns the top-ranked row. It returns an error if no rows are provided.
func Best(rows []domain.ResultRow) (domain.ResultRow, error) {
	if len(rows) == 0 {
		return domain.ResultRow{}, errors.New("no rows provided")
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if less(r, best) {
			best = r
		}
	}
	return best, nil
}

// BestPerTeam keeps each team's top-ranked design, ranked against each other.
func BestPerTeam(rows []domain.ResultRow) []domain.ResultRow {
	byTeam := make(map[string]domain.ResultRow)
	for _, r := range rows {
		cur, ok := byTeam[r.Team]
		if !ok || less(r, cur) {
			byTeam[r.Team] = r
		}
	}
	out := make([]domain.ResultRow, 0, len(byTeam))
	for _, r := range byTeam {
		out = append(out, r)
	}
	return Rank(out)
}

// Summarize builds the run summary persisted by the history store.
func Summarize(root string, startedAt time.Time, rows []domain.ResultRow) domain.RunSummary {
	s := domain.RunSummary{
		StartedAt: startedAt,
		Root:      root,
		Designs:   len(rows),
	}
	for _, r := range rows {
		if r.IsViable {
			s.Viable++
		}
	}
	if best, err := Best(rows); err == nil {
		s.BestTeam = best.Team
		s.BestDesign = best.DesignID
		s.BestScore = best.FinalScore100
	}
	return s
}
