package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abscore/abscore/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultPath is the history database location relative to a submissions root.
const DefaultPath = ".abscore/history.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  INTEGER NOT NULL,
	root        TEXT NOT NULL,
	commit_hash TEXT NOT NULL DEFAULT '',
	designs     INTEGER NOT NULL DEFAULT 0,
	viable      INTEGER NOT NULL DEFAULT 0,
	best_team   TEXT NOT NULL DEFAULT '',
	best_design TEXT NOT NULL DEFAULT '',
	best_score  REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_rows (
	run_id          INTEGER NOT NULL REFERENCES runs(id),
	position        INTEGER NOT NULL,
	team_name       TEXT NOT NULL,
	design_id       TEXT NOT NULL,
	challenge       TEXT NOT NULL,
	final_score_100 REAL NOT NULL,
	is_viable       INTEGER NOT NULL,
	data            TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);
`

// SQLiteHistory implements domain.RunHistory on a SQLite database.
type SQLiteHistory struct {
	db *sqlx.DB
}

// runRecord is the runs table row. started_at is stored as Unix nanoseconds.
type runRecord struct {
	ID         int64   `db:"id"`
	StartedAt  int64   `db:"started_at"`
	Root       string  `db:"root"`
	CommitHash string  `db:"commit_hash"`
	Designs    int     `db:"designs"`
	Viable     int     `db:"viable"`
	BestTeam   string  `db:"best_team"`
	BestDesign string  `db:"best_design"`
	BestScore  float64 `db:"best_score"`
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteHistory{db: db}, nil
}

func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

// Save records a run and its rows in one transaction and returns the run id.
func (h *SQLiteHistory) Save(summary domain.RunSummary, rows []domain.ResultRow) (int64, error) {
	tx, err := h.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	rec := toRecord(summary)
	res, err := tx.NamedExec(`INSERT INTO runs
		(started_at, root, commit_hash, designs, viable, best_team, best_design, best_score)
		VALUES (:started_at, :root, :commit_hash, :designs, :viable, :best_team, :best_design, :best_score)`, rec)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, r := range rows {
		data, err := json.Marshal(r)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec(`INSERT INTO run_rows
			(run_id, position, team_name, design_id, challenge, final_score_100, is_viable, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, r.Team, r.DesignID, r.Challenge, r.FinalScore100, r.IsViable, string(data)); err != nil {
			return 0, fmt.Errorf("insert row %s/%s: %w", r.Team, r.DesignID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the most recent runs first. limit <= 0 returns all runs.
func (h *SQLiteHistory) List(limit int) ([]domain.RunSummary, error) {
	query := `SELECT * FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var recs []runRecord
	if err := h.db.Select(&recs, query, args...); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	out := make([]domain.RunSummary, len(recs))
	for i, rec := range recs {
		out[i] = rec.summary()
	}
	return out, nil
}

// Rows returns the stored rows of a run in the order they were saved.
func (h *SQLiteHistory) Rows(runID int64) ([]domain.ResultRow, error) {
	var blobs []string
	if err := h.db.Select(&blobs, `SELECT data FROM run_rows WHERE run_id = ? ORDER BY position`, runID); err != nil {
		return nil, fmt.Errorf("load rows: %w", err)
	}
	out := make([]domain.ResultRow, len(blobs))
	for i, b := range blobs {
		if err := json.Unmarshal([]byte(b), &out[i]); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
	}
	return out, nil
}

func toRecord(s domain.RunSummary) runRecord {
	return runRecord{
		ID:         s.ID,
		StartedAt:  s.StartedAt.UnixNano(),
		Root:       s.Root,
		CommitHash: s.CommitHash,
		Designs:    s.Designs,
		Viable:     s.Viable,
		BestTeam:   s.BestTeam,
		BestDesign: s.BestDesign,
		BestScore:  s.BestScore,
	}
}

func (r runRecord) summary() domain.RunSummary {
	return domain.RunSummary{
		ID:         r.ID,
		StartedAt:  time.Unix(0, r.StartedAt).UTC(),
		Root:       r.Root,
		CommitHash: r.CommitHash,
		Designs:    r.Designs,
		Viable:     r.Viable,
		BestTeam:   r.BestTeam,
		BestDesign: r.BestDesign,
		BestScore:  r.BestScore,
	}
}
