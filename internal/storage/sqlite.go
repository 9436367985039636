// Package storage persists the flight log in SQLite. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO. Game state itself is never
// persisted; only per-flight statistics survive a run.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the flight log.
type Store struct {
	db *sql.DB
}

// Flight is one recorded play session.
type Flight struct {
	ID        int64
	Ticks     int // Logical ticks flown
	Passes    int // Screen crossings completed
	CreatedAt time.Time
}

// Stats is the aggregate over all recorded flights.
type Stats struct {
	Flights    int
	BestPasses int
	TotalTicks int64
}

// Open creates or opens the flight log at the given path, creating parent
// directories and running migrations as needed. A leading ~ expands to the
// home directory.
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ticks INTEGER NOT NULL,
			passes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_passes ON flights(passes DESC);
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

// SaveFlight records one play session. Returns the ID of the inserted row.
func (s *Store) SaveFlight(ticks, passes int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO flights (ticks, passes) VALUES (?, ?)",
		ticks, passes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentFlights retrieves the most recent flights, newest first.
func (s *Store) RecentFlights(limit int) ([]Flight, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, ticks, passes, created_at
		 FROM flights
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var flights []Flight
	for rows.Next() {
		var f Flight
		var createdAt any
		if err := rows.Scan(&f.ID, &f.Ticks, &f.Passes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		f.CreatedAt = parseTime(createdAt)
		flights = append(flights, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return flights, nil
}

// TotalStats returns the aggregate over all recorded flights.
func (s *Store) TotalStats() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(passes), 0), COALESCE(SUM(ticks), 0) FROM flights`,
	).Scan(&stats.Flights, &stats.BestPasses, &stats.TotalTicks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot aggregate flights: %w", err)
	}
	return stats, nil
}

// ClearFlights deletes the entire flight log.
func (s *Store) ClearFlights() error {
	if _, err := s.db.Exec("DELETE FROM flights"); err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME as either time.Time or a
// string.
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
