package application_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/abscore/abscore/internal/application"
	"github.com/abscore/abscore/internal/domain"
	"github.com/abscore/abscore/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubSubmissions []domain.DesignInput

func (s stubSubmissions) Discover(string) ([]domain.DesignInput, error) { return s, nil }

type memHistory struct {
	saved []domain.RunSummary
	rows  int
}

func (h *memHistory) Save(s domain.RunSummary, rows []domain.ResultRow) (int64, error) {
	h.saved = append(h.saved, s)
	h.rows += len(rows)
	return int64(len(h.saved)), nil
}

func (h *memHistory) List(int) ([]domain.RunSummary, error) { return h.saved, nil }

func (h *memHistory) Rows(int64) ([]domain.ResultRow, error) { return nil, nil }

type failingHistory struct{ memHistory }

func (h *failingHistory) Save(domain.RunSummary, []domain.ResultRow) (int64, error) {
	return 0, errors.New("disk full")
}

type stubGit struct{ hash string }

func (g stubGit) CommitHash(string) (string, error) {
	if g.hash == "" {
		return "", errors.New("not a repo")
	}
	return g.hash, nil
}

func TestRunService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)
	reader := mocks.NewMockSequenceReader(ctrl)

	reader.EXPECT().ReadFASTA(gomock.Any()).DoAndReturn(func(path string) ([]domain.SequenceRecord, error) {
		if path == "/subs/TeamB_challenge1/sequences/b1.fasta" {
			return records(pembroHeavy), nil
		}
		return records(novelHeavy), nil
	}).AnyTimes()
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(toolOutputs).AnyTimes()

	designs := stubSubmissions{
		design("TeamB", "b1", "challenge1"),
		design("TeamA", "a1", "challenge1"),
		design("TeamA", "a2", "challenge2"),
	}
	hist := &memHistory{}
	svc := application.NewRunService(designs, newService(t, domain.DefaultConfig(), runner, reader), hist, stubGit{hash: "abc123"})

	report, err := svc.Run(context.Background(), "/subs")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Designs)
	assert.Equal(t, 2, report.Summary.Viable)
	assert.Equal(t, "TeamA", report.Summary.BestTeam)
	assert.Equal(t, "abc123", report.Summary.CommitHash)
	assert.Equal(t, int64(1), report.Summary.ID)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "TeamB", report.Rows[2].Team, "non-viable design ranks last")

	require.Len(t, report.Groups, 3)
	assert.Equal(t, "TeamA", report.Groups[0].Team)
	assert.Equal(t, "challenge1", report.Groups[0].Challenge)
	assert.Equal(t, "/subs/TeamA_challenge1", report.Groups[0].Dir)
	assert.Equal(t, "TeamB", report.Groups[2].Team)

	require.Len(t, hist.saved, 1)
	assert.Equal(t, 3, hist.rows)
}

func TestRunService_NoDesigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := application.NewRunService(stubSubmissions{},
		newService(t, domain.DefaultConfig(), mocks.NewMockToolRunner(ctrl), mocks.NewMockSequenceReader(ctrl)),
		nil, nil)

	_, err := svc.Run(context.Background(), "/empty")
	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestRunService_HistoryFailureUsesInjectedLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)
	reader := mocks.NewMockSequenceReader(ctrl)
	reader.EXPECT().ReadFASTA(gomock.Any()).Return(records(novelHeavy), nil).AnyTimes()
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(toolOutputs).AnyTimes()

	var logs bytes.Buffer
	svc := application.NewRunService(stubSubmissions{design("TeamA", "a1", "challenge1")},
		newService(t, domain.DefaultConfig(), runner, reader), &failingHistory{}, nil,
		application.WithRunLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	report, err := svc.Run(context.Background(), "/subs")
	require.NoError(t, err)
	assert.Zero(t, report.Summary.ID)
	assert.Contains(t, logs.String(), "saving run history failed")
	assert.Contains(t, logs.String(), "disk full")
}
