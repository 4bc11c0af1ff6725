// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/match"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is one stored match summary. Move lists are not kept; Board
// holds the final position rendered from the first player's side.
type MatchRecord struct {
	ID          int64
	MatchID     string
	FirstAgent  string
	SecondAgent string
	Winner      board.Player
	EndReason   string
	Forfeit     bool
	Turns       int
	Width       int
	Height      int
	WinLength   int
	Board       string
	Error       string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Score returns the result in 1-0, 0-1, 1/2-1/2 form.
func (r MatchRecord) Score() string {
	switch r.Winner {
	case board.First:
		return "1-0"
	case board.Second:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// Standing aggregates the results of one agent across stored matches.
type Standing struct {
	Agent    string
	Games    int
	Wins     int
	Losses   int
	Ties     int
	Forfeits int // losses by timeout, error, illegal or missing move
}

// Points counts a win as 1 and a tie as 1/2.
func (s Standing) Points() float64 {
	return float64(s.Wins) + float64(s.Ties)/2
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			first_agent TEXT NOT NULL,
			second_agent TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			forfeit INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			win_length INTEGER NOT NULL,
			final_board TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_first ON matches(first_agent);
		CREATE INDEX IF NOT EXISTS idx_matches_second ON matches(second_agent);
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

// SaveMatch implements match.ResultSaver.
func (s *Store) SaveMatch(res match.Result) error {
	_, err := s.Insert(recordFromResult(res))
	return err
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

func recordFromResult(res match.Result) MatchRecord {
	rec := MatchRecord{
		MatchID:     res.MatchID,
		FirstAgent:  res.Players[0],
		SecondAgent: res.Players[1],
		Winner:      res.Winner,
		EndReason:   res.Reason.String(),
		Forfeit:     res.Reason.Forfeit(),
		Turns:       res.Turns,
		Width:       res.Board.Width(),
		Height:      res.Board.Height(),
		WinLength:   res.Board.WinLength(),
		Duration:    res.Duration,
	}
	if res.Board.Width() > 0 {
		rec.Board = res.Board.Render(board.First)
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	return rec
}

// Insert stores a match record and returns its row ID.
func (s *Store) Insert(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, first_agent, second_agent, winner, end_reason, forfeit, turns,
		  width, height, win_length, final_board, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.FirstAgent,
		rec.SecondAgent,
		int(rec.Winner),
		rec.EndReason,
		rec.Forfeit,
		rec.Turns,
		rec.Width,
		rec.Height,
		rec.WinLength,
		rec.Board,
		rec.Error,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, first_agent, second_agent, winner, end_reason, forfeit, turns,
	width, height, win_length, final_board, error, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var (
		rec        MatchRecord
		winner     int
		durationMS int64
		createdAt  any
	)
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.FirstAgent,
		&rec.SecondAgent,
		&winner,
		&rec.EndReason,
		&rec.Forfeit,
		&rec.Turns,
		&rec.Width,
		&rec.Height,
		&rec.WinLength,
		&rec.Board,
		&rec.Error,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.Winner = board.Player(winner)
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. It returns nil without an
// error when no such match exists.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`, matchID)
	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first. When agent
// is not empty only matches it played are returned.
func (s *Store) RecentMatches(agent string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + matchColumns + ` FROM matches`
	args := []any{}
	if agent != "" {
		query += ` WHERE first_agent = ? OR second_agent = ?`
		args = append(args, agent, agent)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Standings aggregates wins, losses and ties per agent, best first.
func (s *Store) Standings() ([]Standing, error) {
	rows, err := s.db.Query(`
		SELECT agent,
		       COUNT(*) AS games,
		       SUM(result = 1) AS wins,
		       SUM(result = -1) AS losses,
		       SUM(result = 0) AS ties,
		       SUM(result = -1 AND forfeit = 1) AS forfeits
		FROM (
			SELECT first_agent AS agent,
			       CASE winner WHEN 1 THEN 1 WHEN 2 THEN -1 ELSE 0 END AS result,
			       forfeit
			FROM matches
			UNION ALL
			SELECT second_agent AS agent,
			       CASE winner WHEN 2 THEN 1 WHEN 1 THEN -1 ELSE 0 END AS result,
			       forfeit
			FROM matches
		)
		GROUP BY agent
		ORDER BY SUM(result = 1) * 2 + SUM(result = 0) DESC, COUNT(*) ASC, agent ASC`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Agent, &st.Games, &st.Wins, &st.Losses, &st.Ties, &st.Forfeits); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standings row: %w", err)
		}
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return standings, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
