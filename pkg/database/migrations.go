package database

import (
	"context"
	"fmt"
)

// migrations run in order on every start. Each statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id         INT PRIMARY KEY,
		name       TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS library_movies (
		user_id            UUID NOT NULL,
		movie_id           INT NOT NULL,
		collection         TEXT NOT NULL CHECK (collection IN ('seen', 'watchlist')),
		title              TEXT NOT NULL,
		genre_ids          INT[] NOT NULL DEFAULT '{}',
		release_date       DATE,
		tmdb_score         DOUBLE PRECISION,
		user_rating        DOUBLE PRECISION,
		elo_rating         DOUBLE PRECISION,
		poster_path        TEXT NOT NULL DEFAULT '',
		overview           TEXT NOT NULL DEFAULT '',
		adult              BOOLEAN NOT NULL DEFAULT FALSE,
		provider_ids       INT[] NOT NULL DEFAULT '{}',
		comparison_history JSONB NOT NULL DEFAULT '[]',
		comparison_wins    INT NOT NULL DEFAULT 0,
		games_played       INT NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, movie_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_library_movies_collection
		ON library_movies (user_id, collection)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
