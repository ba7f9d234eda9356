// Package storage persists finished runs and best scores.
// The run log uses the pure-Go modernc.org/sqlite driver to avoid CGO;
// the window host keeps its best score in a gdata key-value store.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalPlayer names runs played on the local terminal or window.
const LocalPlayer = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID         int64
	Player     string
	Score      int
	Stars      int
	Duration   time.Duration
	Seed       int64
	Difficulty string
	CreatedAt  time.Time
}

// Stats aggregates the run log.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalStars int64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			player TEXT PRIMARY KEY,
			score INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.Player == "" {
		run.Player = LocalPlayer
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (player, score, stars, duration_ms, seed, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Player, run.Score, run.Stars, run.Duration.Milliseconds(), run.Seed, run.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs across all players, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, stars, duration_ms, seed, difficulty, created_at
		 FROM runs
		 ORDER BY score DESC, stars DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns returns a player's best runs, highest score first.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, stars, duration_ms, seed, difficulty, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY score DESC, stars DESC, id ASC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Stars, &durationMs, &r.Seed, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Players returns every player with at least one recorded run, sorted by name.
func (s *Store) Players() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT player FROM runs ORDER BY player")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// HighScore returns the highest recorded run score, or 0 if there are none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes the run log. Best scores are kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the whole run log.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var totalMs int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(stars), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalStars, &totalMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// LoadBest returns the player's best score, or 0 if none was stored.
func (s *Store) LoadBest(player string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE player = ?", player).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	return score, nil
}

// SaveBest stores the player's best score. A lower score never replaces a higher one.
func (s *Store) SaveBest(player string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (player, score) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET score = MAX(score, excluded.score)`,
		player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// BestFor binds the best-score table to one player.
func (s *Store) BestFor(player string) PlayerBest {
	return PlayerBest{store: s, player: player}
}

// PlayerBest is a single player's view of the best-score table.
type PlayerBest struct {
	store  *Store
	player string
}

// LoadBest returns the bound player's best score.
func (b PlayerBest) LoadBest() (int, error) {
	return b.store.LoadBest(b.player)
}

// SaveBest stores the bound player's best score.
func (b PlayerBest) SaveBest(score int) error {
	return b.store.SaveBest(b.player, score)
}

// parseTime handles both time.Time and the driver's text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
