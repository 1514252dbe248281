// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is used when a query asks for zero or fewer rows.
const DefaultLimit = 10

// Store manages the SQLite database connection for game records.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        uuid.UUID
	Player    string // "local" or the SSH user name
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	CreatedAt time.Time
}

// Stats contains aggregated statistics across recorded games.
type Stats struct {
	GamesCount int
	WinsCount  int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_player ON games(player);
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

// SaveGame records a finished game and returns its generated ID.
func (s *Store) SaveGame(rec GameRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Player == "" {
		rec.Player = "local"
	}

	_, err := s.db.Exec(
		"INSERT INTO games (id, player, score, max_tile, moves, won) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID.String(), rec.Player, rec.Score, rec.MaxTile, rec.Moves, rec.Won,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save game: %w", err)
	}

	return rec.ID, nil
}

// TopGames retrieves the N highest-scoring games, ordered by score descending.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, max_tile, moves, won, created_at
		 FROM games
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// PlayerGames retrieves the most recent games of one player.
func (s *Store) PlayerGames(player string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, max_tile, moves, won, created_at
		 FROM games
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// Game retrieves a single record by ID.
func (s *Store) Game(id uuid.UUID) (GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, player, score, max_tile, moves, won, created_at
		 FROM games WHERE id = ?`,
		id.String(),
	)
	if err != nil {
		return GameRecord{}, fmt.Errorf("storage: cannot query game: %w", err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	if err != nil {
		return GameRecord{}, err
	}
	if len(games) == 0 {
		return GameRecord{}, fmt.Errorf("storage: game %s: %w", id, sql.ErrNoRows)
	}
	return games[0], nil
}

// HighScore returns the best recorded score, or 0 if none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearGames deletes all recorded games.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics across all games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.WinsCount, &stats.HighScore, &stats.BestTile, &stats.AvgScore, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

func scanGames(rows *sql.Rows) ([]GameRecord, error) {
	var games []GameRecord
	for rows.Next() {
		var rec GameRecord
		var id string
		var createdAt any
		if err := rows.Scan(&id, &rec.Player, &rec.Score, &rec.MaxTile, &rec.Moves, &rec.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad game id %q: %w", id, err)
		}
		rec.ID = parsed
		rec.CreatedAt = parseTime(createdAt)

		games = append(games, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// parseTime handles both driver time values and SQLite's text timestamps.
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
