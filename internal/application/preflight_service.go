package application

import (
	"fmt"
	"strings"

	"github.com/abscore/abscore/internal/domain"
)

// PreflightService checks that external tools resolve before a batch starts.
type PreflightService struct {
	runner domain.ToolRunner
}

func NewPreflightService(runner domain.ToolRunner) *PreflightService {
	return &PreflightService{runner: runner}
}

// Check resolves every configured tool command, in tool-name order.
func (s *PreflightService) Check(cfg domain.Config) []domain.ToolStatus {
	out := make([]domain.ToolStatus, 0, len(cfg.Tools))
	for _, name := range cfg.ToolNames() {
		td := cfg.Tools[name]
		st := domain.ToolStatus{
			Tool:     name,
			Command:  td.Command,
			Parser:   td.ParserFor(name),
			Required: td.Required,
		}
		path, err := s.runner.LookPath(td.Command)
		if err != nil {
			st.Error = err.Error()
		} else {
			st.Path = path
			st.Available = true
		}
		out = append(out, st)
	}
	return out
}

// Require fails with ErrToolUnavailable when any required tool is missing.
// Optional tools that are missing only leave their metrics absent.
func (s *PreflightService) Require(cfg domain.Config) ([]domain.ToolStatus, error) {
	statuses := s.Check(cfg)
	var missing []string
	for _, st := range statuses {
		if st.Required && !st.Available {
			missing = append(missing, st.Tool)
		}
	}
	if len(missing) > 0 {
		return statuses, fmt.Errorf("%w: %s", domain.ErrToolUnavailable, strings.Join(missing, ", "))
	}
	return statuses, nil
}
