// Package storage provides SQLite-based persistence for mission records.
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

	"github.com/vovakirdan/tui-trek/internal/trek"
)

// Store manages the SQLite database connection for mission records.
type Store struct {
	db *sql.DB
}

// MissionRecord is one finished mission.
type MissionRecord struct {
	ID                int64
	Player            string
	Seed              int64
	Outcome           string // trek.Status name: victory, ship_destroyed, ...
	Difficulty        string
	KlingonsDestroyed int
	TotalKlingons     int
	StarbasesLeft     int
	StardatesUsed     float64
	Efficiency        float64
	CreatedAt         time.Time
}

// OutcomeStats aggregates every mission that ended the same way.
type OutcomeStats struct {
	Outcome           string
	Missions          int
	BestEfficiency    float64
	AvgEfficiency     float64
	KlingonsDestroyed int64
	LastPlayed        time.Time
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
		CREATE TABLE IF NOT EXISTS missions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			klingons_destroyed INTEGER NOT NULL DEFAULT 0,
			total_klingons INTEGER NOT NULL DEFAULT 0,
			starbases_left INTEGER NOT NULL DEFAULT 0,
			stardates_used REAL NOT NULL DEFAULT 0,
			efficiency REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_missions_outcome ON missions(outcome);
		CREATE INDEX IF NOT EXISTS idx_missions_top ON missions(efficiency DESC, klingons_destroyed DESC);
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

// SaveMission records a finished mission.
// Returns the ID of the inserted record.
func (s *Store) SaveMission(m MissionRecord) (int64, error) {
	if m.Difficulty == "" {
		m.Difficulty = "normal"
	}

	result, err := s.db.Exec(
		`INSERT INTO missions
		 (player, seed, outcome, difficulty, klingons_destroyed, total_klingons,
		  starbases_left, stardates_used, efficiency)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Player, m.Seed, m.Outcome, m.Difficulty, m.KlingonsDestroyed, m.TotalKlingons,
		m.StarbasesLeft, m.StardatesUsed, m.Efficiency,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult records the summary of a finished mission.
func (s *Store) SaveResult(player string, seed int64, difficulty string, r trek.Result) (int64, error) {
	return s.SaveMission(MissionRecord{
		Player:            player,
		Seed:              seed,
		Outcome:           r.Status.String(),
		Difficulty:        difficulty,
		KlingonsDestroyed: r.KlingonsDestroyed,
		TotalKlingons:     r.TotalKlingons,
		StarbasesLeft:     r.StarbasesLeft,
		StardatesUsed:     r.StardatesUsed,
		Efficiency:        r.Efficiency,
	})
}

const missionColumns = `id, player, seed, outcome, difficulty, klingons_destroyed, total_klingons,
	starbases_left, stardates_used, efficiency, created_at`

// TopMissions retrieves the best missions, optionally restricted to one
// outcome. Results are ordered by efficiency, then klingons destroyed.
func (s *Store) TopMissions(outcome string, limit int) ([]MissionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+missionColumns+`
		 FROM missions
		 WHERE ? = '' OR outcome = ?
		 ORDER BY efficiency DESC, klingons_destroyed DESC, stardates_used ASC, id ASC
		 LIMIT ?`,
		outcome, outcome, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query missions: %w", err)
	}
	return scanMissions(rows)
}

// RecentMissions retrieves the most recently recorded missions.
func (s *Store) RecentMissions(limit int) ([]MissionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+missionColumns+`
		 FROM missions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query missions: %w", err)
	}
	return scanMissions(rows)
}

// MissionByID retrieves one mission. It returns nil if no such mission
// exists.
func (s *Store) MissionByID(id int64) (*MissionRecord, error) {
	row := s.db.QueryRow(`SELECT `+missionColumns+` FROM missions WHERE id = ?`, id)

	m, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mission: %w", err)
	}
	return &m, nil
}

// ClearMissions deletes every mission record.
func (s *Store) ClearMissions() error {
	if _, err := s.db.Exec("DELETE FROM missions"); err != nil {
		return fmt.Errorf("storage: cannot clear missions: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics keyed by outcome.
func (s *Store) Stats() (map[string]*OutcomeStats, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*), MAX(efficiency), AVG(efficiency), SUM(klingons_destroyed), MAX(created_at)
		 FROM missions
		 GROUP BY outcome`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mission stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*OutcomeStats)
	for rows.Next() {
		var st OutcomeStats
		var lastPlayed any
		if err := rows.Scan(&st.Outcome, &st.Missions, &st.BestEfficiency, &st.AvgEfficiency,
			&st.KlingonsDestroyed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Outcome] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMission(row scanner) (MissionRecord, error) {
	var m MissionRecord
	var createdAt any
	err := row.Scan(&m.ID, &m.Player, &m.Seed, &m.Outcome, &m.Difficulty, &m.KlingonsDestroyed,
		&m.TotalKlingons, &m.StarbasesLeft, &m.StardatesUsed, &m.Efficiency, &createdAt)
	if err != nil {
		return m, err
	}
	m.CreatedAt = parseTimestamp(createdAt)
	return m, nil
}

func scanMissions(rows *sql.Rows) ([]MissionRecord, error) {
	defer rows.Close()

	var missions []MissionRecord
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		missions = append(missions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return missions, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text form.
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
