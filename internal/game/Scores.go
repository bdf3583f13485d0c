package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const (
	bestTableName = "best_score"
	runsTableName = "runs"

	sqliteTimeLayout = "2006-01-02 15:04:05"
)

// ScoreService persists the best score and a history of finished runs in
// sqlite. When the database cannot be opened the service keeps working
// with in-memory defaults, so unavailable storage never reaches the game
// core.
type ScoreService struct {
	db *sql.DB
}

// RunScore is one finished run on the leaderboard.
type RunScore struct {
	ID         int
	PlayerName string
	Score      int
	CreatedAt  time.Time
}

func NewScoreService(dbPath string) *ScoreService {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Warn("Scores database unavailable, continuing without persistence", "path", dbPath, "error", err)
		return &ScoreService{}
	}

	service := &ScoreService{db: db}
	if err := service.createTables(); err != nil {
		log.Warn("Could not prepare scores schema, continuing without persistence", "path", dbPath, "error", err)
		db.Close()
		service.db = nil
	}

	return service
}

func (serviceImpl *ScoreService) createTables() error {
	const createSQL = `
	CREATE TABLE IF NOT EXISTS ` + bestTableName + ` (
		id INTEGER PRIMARY KEY CHECK (id = 0),
		score INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS ` + runsTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := serviceImpl.db.Exec(createSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

// LoadBest returns the persisted best score, or 0 when storage is absent
// or holds nothing readable.
func (serviceImpl *ScoreService) LoadBest() int {
	if serviceImpl == nil || serviceImpl.db == nil {
		return 0
	}

	const selectSQL = `SELECT score FROM ` + bestTableName + ` WHERE id = 0;`
	var best int
	err := serviceImpl.db.QueryRow(selectSQL).Scan(&best)
	if err == sql.ErrNoRows {
		return 0
	}
	if err != nil {
		log.Warn("Could not read best score, defaulting to 0", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// SaveBest writes the best score through to storage. Failures are logged
// and swallowed; the in-memory best is still authoritative for the run.
func (serviceImpl *ScoreService) SaveBest(best int) {
	if serviceImpl == nil || serviceImpl.db == nil {
		return
	}

	const upsertSQL = `
	INSERT INTO ` + bestTableName + ` (id, score) VALUES (0, ?)
	ON CONFLICT(id) DO UPDATE SET score = excluded.score;`

	if _, err := serviceImpl.db.Exec(upsertSQL, best); err != nil {
		log.Warn("Could not save best score", "best", best, "error", err)
	}
}

// RecordRun stores one finished run for the leaderboard.
func (serviceImpl *ScoreService) RecordRun(playerName string, score int) error {
	if serviceImpl == nil || serviceImpl.db == nil {
		return nil
	}

	const insertSQL = `
	INSERT INTO ` + runsTableName + ` (player_name, score)
	VALUES (?, ?);`

	_, err := serviceImpl.db.Exec(insertSQL, playerName, score)
	if err != nil {
		return fmt.Errorf("failed to insert run for %s: %w", playerName, err)
	}

	return nil
}

// TopRuns retrieves the highest-scoring runs, best first, ties resolved
// by age.
func (serviceImpl *ScoreService) TopRuns(limit int) ([]RunScore, error) {
	if serviceImpl == nil || serviceImpl.db == nil {
		return nil, nil
	}

	const selectSQL = `
	SELECT id, player_name, score, created_at
	FROM ` + runsTableName + `
	ORDER BY score DESC, created_at ASC
	LIMIT ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunScore
	for rows.Next() {
		var run RunScore
		var createdAt string
		if err := rows.Scan(&run.ID, &run.PlayerName, &run.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		parsed, err := time.Parse(sqliteTimeLayout, createdAt)
		if err != nil {
			// Older sqlite drivers hand back RFC3339 here.
			parsed, err = time.Parse(time.RFC3339, createdAt)
		}
		if err == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return runs, nil
}

func (serviceImpl *ScoreService) Close() error {
	if serviceImpl == nil || serviceImpl.db == nil {
		return nil
	}
	return serviceImpl.db.Close()
}
