// Package storage provides the SQLite-backed session journal. The
// journal records the seed, shape and confirmed input events of each
// play session so a session can be re-simulated deterministically for
// diagnostics. It deliberately stores no scores. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Journal manages the SQLite database connection for session records.
type Journal struct {
	db *sql.DB
}

// Session describes one recorded play session. The speed parameters are
// captured so a replay runs the exact curve the session was played with.
type Session struct {
	ID             string
	Seed           int64
	Rows           int
	Cols           int
	BlockWidth     int
	InitialDelayMs int64
	StepMs         int64
	MinDelayMs     int64
	TickRate       int // Ticks per second; replay must step at the same cadence
	StartedAt      time.Time
	EndedAt        time.Time // Zero when the session is still open
	EndReason      string    // Empty while open; "missed", "topped_out" or "quit"
}

// EventRecord is one confirmed input event within a session.
type EventRecord struct {
	ID        int64
	SessionID string
	AtMs      int64
	Kind      string
}

// Open creates or opens the journal database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
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

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			block_width INTEGER NOT NULL,
			initial_delay_ms INTEGER NOT NULL,
			step_ms INTEGER NOT NULL,
			min_delay_ms INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			end_reason TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			at_ms INTEGER NOT NULL,
			kind TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, at_ms);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// BeginSession records a new session and returns its ID.
func (j *Journal) BeginSession(s Session) (string, error) {
	id := uuid.NewString()
	_, err := j.db.Exec(
		`INSERT INTO sessions (id, seed, rows, cols, block_width, initial_delay_ms, step_ms, min_delay_ms, tick_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.Seed, s.Rows, s.Cols, s.BlockWidth, s.InitialDelayMs, s.StepMs, s.MinDelayMs, s.TickRate,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin session: %w", err)
	}
	return id, nil
}

// LogEvent appends a confirmed input event to a session.
func (j *Journal) LogEvent(sessionID string, atMs int64, kind string) error {
	_, err := j.db.Exec(
		"INSERT INTO events (session_id, at_ms, kind) VALUES (?, ?, ?)",
		sessionID, atMs, kind,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot log event: %w", err)
	}
	return nil
}

// EndSession closes a session with its end reason.
func (j *Journal) EndSession(sessionID, reason string) error {
	_, err := j.db.Exec(
		"UPDATE sessions SET ended_at = CURRENT_TIMESTAMP, end_reason = ? WHERE id = ?",
		reason, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	return nil
}

// Session retrieves a single session by ID.
func (j *Journal) Session(id string) (Session, error) {
	row := j.db.QueryRow(
		`SELECT id, seed, rows, cols, block_width, initial_delay_ms, step_ms, min_delay_ms, tick_rate,
		        started_at, ended_at, end_reason
		 FROM sessions WHERE id = ?`, id,
	)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return s, fmt.Errorf("storage: unknown session %q", id)
	}
	if err != nil {
		return s, fmt.Errorf("storage: cannot load session: %w", err)
	}
	return s, nil
}

// Sessions retrieves the most recent sessions, newest first.
func (j *Journal) Sessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, seed, rows, cols, block_width, initial_delay_ms, step_ms, min_delay_ms, tick_rate,
		        started_at, ended_at, end_reason
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Events retrieves a session's events ordered by time.
func (j *Journal) Events(sessionID string) ([]EventRecord, error) {
	rows, err := j.db.Query(
		"SELECT id, session_id, at_ms, kind FROM events WHERE session_id = ? ORDER BY at_ms, id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var e EventRecord
		if err := rows.Scan(&e.ID, &e.SessionID, &e.AtMs, &e.Kind); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (Session, error) {
	var s Session
	var startedAt, endedAt any
	err := sc.Scan(&s.ID, &s.Seed, &s.Rows, &s.Cols, &s.BlockWidth,
		&s.InitialDelayMs, &s.StepMs, &s.MinDelayMs, &s.TickRate,
		&startedAt, &endedAt, &s.EndReason)
	if err != nil {
		return s, err
	}
	s.StartedAt = parseTimestamp(startedAt)
	s.EndedAt = parseTimestamp(endedAt)
	return s, nil
}

// parseTimestamp handles both time.Time and string representations
// coming back from the driver. Nil maps to the zero time.
func parseTimestamp(v any) time.Time {
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
