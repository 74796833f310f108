// Package storage provides SQLite-based persistence for finished
// episodes. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only terminal results are recorded; a running episode
// never touches the database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for episode history.
type Store struct {
	db *sql.DB
}

// Episode is one finished playthrough of the ruin.
type Episode struct {
	ID             int64
	Seed           int64
	Victory        bool
	Moves          int
	RunesCollected int
	Duration       int // seconds from first intent to terminal state
	PlayedAt       time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Played    int
	Won       int
	BestMoves int // fewest moves across victories, 0 if none
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
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			victory INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			runes_collected INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_played_at ON episodes(played_at DESC);
		CREATE INDEX IF NOT EXISTS idx_episodes_victories ON episodes(victory, moves ASC);
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

// SaveEpisode records one finished episode.
// Returns the ID of the inserted record.
func (s *Store) SaveEpisode(e Episode) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (seed, victory, moves, runes_collected, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Seed, boolInt(e.Victory), e.Moves, e.RunesCollected, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEpisodes retrieves the most recently played episodes,
// newest first.
func (s *Store) RecentEpisodes(limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, victory, moves, runes_collected, duration_secs, played_at
		 FROM episodes
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

// BestVictories retrieves the winning episodes with the fewest moves.
func (s *Store) BestVictories(limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, victory, moves, runes_collected, duration_secs, played_at
		 FROM episodes
		 WHERE victory = 1
		 ORDER BY moves ASC, played_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query victories: %w", err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

// Stats returns aggregate history: episodes played, episodes won, and
// the fewest moves any victory took (0 when no victory exists).
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(victory), 0),
		        MIN(CASE WHEN victory = 1 THEN moves END)
		 FROM episodes`,
	).Scan(&st.Played, &st.Won, &best)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.BestMoves = int(best.Int64)
	}

	return st, nil
}

func scanEpisodes(rows *sql.Rows) ([]Episode, error) {
	var episodes []Episode
	for rows.Next() {
		var e Episode
		var victory int
		var playedAt any
		if err := rows.Scan(&e.ID, &e.Seed, &victory, &e.Moves, &e.RunesCollected, &e.Duration, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Victory = victory != 0

		// Parse the datetime - handle both time.Time and string
		switch v := playedAt.(type) {
		case time.Time:
			e.PlayedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.PlayedAt = parsed
			}
		}
		episodes = append(episodes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return episodes, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
