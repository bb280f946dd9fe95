package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/mapleleafu/cheesechase/config"
	"github.com/mapleleafu/cheesechase/models"
)

func ConnectToPostgreSQL(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

const createMatchesTable = `CREATE TABLE IF NOT EXISTS matches (
	id          UUID PRIMARY KEY,
	started_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL,
	player_ids  TEXT[] NOT NULL,
	winner      TEXT NOT NULL
)`

// MatchStore keeps one summary row per finished match.
type MatchStore struct {
	db *sql.DB
}

func NewMatchStore(db *sql.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createMatchesTable); err != nil {
		return fmt.Errorf("create matches table: %w", err)
	}
	return nil
}

func (s *MatchStore) Name() string { return "postgres" }

func (s *MatchStore) SaveMatch(ctx context.Context, rec models.MatchRecord) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO matches (id, started_at, finished_at, player_ids, winner) VALUES ($1, $2, $3, $4, $5)",
		rec.ID, rec.StartedAt, rec.FinishedAt, pq.Array(rec.PlayerIDs), rec.Winner)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", rec.ID, err)
	}
	return nil
}

// RecentMatches returns up to limit summaries, newest first.
func (s *MatchStore) RecentMatches(ctx context.Context, limit int) ([]models.MatchSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, finished_at, player_ids, winner FROM matches ORDER BY finished_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.MatchSummary, 0, limit)
	for rows.Next() {
		var m models.MatchSummary
		if err := rows.Scan(&m.ID, &m.StartedAt, &m.FinishedAt, pq.Array(&m.PlayerIDs), &m.Winner); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}
