package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/leaderboard"
)

// RunReport is the outcome of scoring a submissions root.
type RunReport struct {
	Summary domain.RunSummary   `json:"summary"`
	Rows    []domain.ResultRow  `json:"rows"`
	Groups  []SubmissionResults `json:"groups"`
}

// SubmissionResults holds the rows of one team's challenge submission.
type SubmissionResults struct {
	Team      string             `json:"team"`
	Challenge string             `json:"challenge"`
	Dir       string             `json:"dir,omitempty"`
	Rows      []domain.ResultRow `json:"rows"`
}

// RunService discovers every design under a submissions root, scores the
// batch, and records the run.
type RunService struct {
	source  domain.SubmissionSource
	scorer  *ScoreService
	history domain.RunHistory
	git     domain.GitInfo
	now     func() time.Time
	logger  *slog.Logger
}

// RunOption configures a RunService.
type RunOption func(*RunService)

// WithRunLogger sets the logger used for history failures.
func WithRunLogger(l *slog.Logger) RunOption {
	return func(s *RunService) {
		s.logger = l
	}
}

// NewRunService wires the batch runner. history and git may be nil.
func NewRunService(
	source domain.SubmissionSource,
	scorer *ScoreService,
	history domain.RunHistory,
	git domain.GitInfo,
	opts ...RunOption,
) *RunService {
	s := &RunService{
		source:  source,
		scorer:  scorer,
		history: history,
		git:     git,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *RunService) Run(ctx context.Context, root string) (*RunReport, error) {
	started := s.now()

	// 1. Discover designs
	designs, err := s.source.Discover(root)
	if err != nil {
		return nil, fmt.Errorf("discovering submissions: %w", err)
	}
	if len(designs) == 0 {
		return nil, fmt.Errorf("%w: no designs found under %s", domain.ErrMissingInput, root)
	}

	// 2. Score in parallel
	rows, err := s.scorer.ScoreBatch(ctx, designs)
	if err != nil {
		return nil, err
	}

	// 3. Summarize and record
	report := &RunReport{
		Summary: leaderboard.Summarize(root, started, rows),
		Rows:    leaderboard.Rank(rows),
		Groups:  group(designs, rows),
	}
	if s.git != nil {
		if hash, err := s.git.CommitHash(root); err == nil {
			report.Summary.CommitHash = hash
		}
	}
	if s.history != nil {
		id, err := s.history.Save(report.Summary, rows)
		if err != nil {
			s.logger.Warn("saving run history failed", "error", err)
		} else {
			report.Summary.ID = id
		}
	}
	return report, nil
}

// group splits rows by team and challenge, keeping discovery order within
// each group. rows[i] is the result of designs[i].
func group(designs []domain.DesignInput, rows []domain.ResultRow) []SubmissionResults {
	idx := map[string]int{}
	var out []SubmissionResults
	for n, r := range rows {
		key := r.Team + "\x00" + strings.ToLower(r.Challenge)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, SubmissionResults{Team: r.Team, Challenge: r.Challenge, Dir: designs[n].Dir})
		}
		out[i].Rows = append(out[i].Rows, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Challenge < out[j].Challenge
	})
	return out
}
