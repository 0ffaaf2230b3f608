package repository

import (
	"context"
	"fmt"

	"movie-ranker/internal/data/entity"
	"movie-ranker/pkg/database"

	"go.uber.org/zap"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	UpsertBatch(ctx context.Context, genres []*entity.Genre) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, updated_at FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	genres := []*entity.Genre{}
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.UpdatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}
	return genres, nil
}

// UpsertBatch writes all genres in one statement.
func (r *genreRepository) UpsertBatch(ctx context.Context, genres []*entity.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	query := `
		INSERT INTO genres (id, name, updated_at)
		SELECT id, name, now() FROM unnest($1::int[], $2::text[]) AS g(id, name)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
	`

	ids := make([]int, len(genres))
	names := make([]string, len(genres))
	for i, g := range genres {
		ids[i] = g.ID
		names[i] = g.Name
	}

	if _, err := r.db.Exec(ctx, query, ids, names); err != nil {
		r.log.Error("Failed to upsert genres", zap.Error(err), zap.Int("count", len(genres)))
		return fmt.Errorf("upsert genres: %w", err)
	}

	r.log.Info("Genres upserted", zap.Int("count", len(genres)))
	return nil
}
