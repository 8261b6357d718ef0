package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is the record of one finished episode.
type Run struct {
	ID            string
	GameID        string
	Player        string // SSH user or empty for local play
	Score         int
	MaxLevel      int
	KillsEnemy    int
	KillsAsteroid int
	KillsBoss     int
	ShotsFired    int
	Duration      time.Duration
	Seed          int64
	CreatedAt     time.Time
}

const runColumns = `id, game_id, player, score, max_level, kills_enemy, kills_asteroid,
	kills_boss, shots_fired, duration_ms, seed, created_at`

// SaveRun stores a run record, assigning a new UUID when run.ID is empty.
// Returns the run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.MaxLevel < 1 {
		run.MaxLevel = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, player, score, max_level, kills_enemy, kills_asteroid,
		                   kills_boss, shots_fired, duration_ms, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.GameID,
		run.Player,
		run.Score,
		run.MaxLevel,
		run.KillsEnemy,
		run.KillsAsteroid,
		run.KillsBoss,
		run.ShotsFired,
		run.Duration.Milliseconds(),
		run.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RunByID retrieves a run. Returns nil without error if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (*Run, error) {
	var run Run
	var durationMs int64
	var createdAt any
	if err := r.Scan(
		&run.ID,
		&run.GameID,
		&run.Player,
		&run.Score,
		&run.MaxLevel,
		&run.KillsEnemy,
		&run.KillsAsteroid,
		&run.KillsBoss,
		&run.ShotsFired,
		&durationMs,
		&run.Seed,
		&createdAt,
	); err != nil {
		return nil, err
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}
