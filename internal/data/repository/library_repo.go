package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-ranker/internal/data/entity"
	"movie-ranker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when the movie is already in one of the user's
// collections.
var ErrDuplicate = errors.New("movie already in library")

const uniqueViolation = "23505"

type LibraryRepository interface {
	FindByCollection(ctx context.Context, userID uuid.UUID, collection entity.Collection) ([]*entity.LibraryMovie, error)
	FindByID(ctx context.Context, userID uuid.UUID, movieID int) (*entity.LibraryMovie, error)
	Create(ctx context.Context, movie *entity.LibraryMovie) error

	// PromoteToSeen writes the rating and moves the movie into the Seen
	// collection in one transaction. Comparison fields are untouched.
	PromoteToSeen(ctx context.Context, userID uuid.UUID, movieID int, userRating, eloRating float64) (*entity.LibraryMovie, error)

	UpdateProviders(ctx context.Context, userID uuid.UUID, movieID int, providerIDs []int) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, movieID int) (bool, error)

	// Version changes whenever any of the user's library rows change.
	Version(ctx context.Context, userID uuid.UUID) (string, error)
}

type libraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLibraryRepository(db database.PgxIface, log *zap.Logger) LibraryRepository {
	return &libraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "library")),
	}
}

const libraryColumns = `
	user_id, movie_id, collection, title, genre_ids, release_date, tmdb_score,
	user_rating, elo_rating, poster_path, overview, adult, provider_ids,
	comparison_history, comparison_wins, games_played, created_at, updated_at
`

func scanLibraryMovie(row pgx.Row) (*entity.LibraryMovie, error) {
	var m entity.LibraryMovie
	err := row.Scan(
		&m.UserID,
		&m.MovieID,
		&m.Collection,
		&m.Title,
		&m.GenreIDs,
		&m.ReleaseDate,
		&m.TMDBScore,
		&m.UserRating,
		&m.EloRating,
		&m.PosterPath,
		&m.Overview,
		&m.Adult,
		&m.ProviderIDs,
		&m.ComparisonHistory,
		&m.ComparisonWins,
		&m.GamesPlayed,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *libraryRepository) FindByCollection(ctx context.Context, userID uuid.UUID, collection entity.Collection) ([]*entity.LibraryMovie, error) {
	query := `SELECT ` + libraryColumns + `
		FROM library_movies
		WHERE user_id = $1 AND collection = $2
		ORDER BY created_at, movie_id`

	rows, err := r.db.Query(ctx, query, userID, collection)
	if err != nil {
		r.log.Error("Failed to find library movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("collection", string(collection)),
		)
		return nil, fmt.Errorf("find %s movies: %w", collection, err)
	}
	defer rows.Close()

	movies := []*entity.LibraryMovie{}
	for rows.Next() {
		m, err := scanLibraryMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan library row", zap.Error(err))
			return nil, fmt.Errorf("scan library row: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library rows: %w", err)
	}

	r.log.Debug("Library movies found",
		zap.String("user_id", userID.String()),
		zap.String("collection", string(collection)),
		zap.Int("count", len(movies)),
	)
	return movies, nil
}

func (r *libraryRepository) FindByID(ctx context.Context, userID uuid.UUID, movieID int) (*entity.LibraryMovie, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_movies WHERE user_id = $1 AND movie_id = $2`

	m, err := scanLibraryMovie(r.db.QueryRow(ctx, query, userID, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find library movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("find library movie: %w", err)
	}
	return m, nil
}

// Create inserts the row. Timestamps come from the database clock, the same
// clock every later update uses, so Version moves forward on each write.
func (r *libraryRepository) Create(ctx context.Context, m *entity.LibraryMovie) error {
	query := `
		INSERT INTO library_movies (
			user_id, movie_id, collection, title, genre_ids, release_date, tmdb_score,
			user_rating, elo_rating, poster_path, overview, adult, provider_ids,
			comparison_history, comparison_wins, games_played, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		m.UserID,
		m.MovieID,
		m.Collection,
		m.Title,
		m.GenreIDs,
		m.ReleaseDate,
		m.TMDBScore,
		m.UserRating,
		m.EloRating,
		m.PosterPath,
		m.Overview,
		m.Adult,
		m.ProviderIDs,
		m.ComparisonHistory,
		m.ComparisonWins,
		m.GamesPlayed,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		r.log.Error("Failed to create library movie",
			zap.Error(err),
			zap.String("user_id", m.UserID.String()),
			zap.Int("movie_id", m.MovieID),
		)
		return fmt.Errorf("create library movie: %w", err)
	}
	return nil
}

func (r *libraryRepository) PromoteToSeen(ctx context.Context, userID uuid.UUID, movieID int, userRating, eloRating float64) (*entity.LibraryMovie, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin promote: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT true FROM library_movies WHERE user_id = $1 AND movie_id = $2 FOR UPDATE`,
		userID, movieID,
	).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock library movie: %w", err)
	}

	query := `
		UPDATE library_movies
		SET collection = 'seen', user_rating = $3, elo_rating = $4, updated_at = now()
		WHERE user_id = $1 AND movie_id = $2
		RETURNING ` + libraryColumns

	m, err := scanLibraryMovie(tx.QueryRow(ctx, query, userID, movieID, userRating, eloRating))
	if err != nil {
		r.log.Error("Failed to promote library movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("promote library movie: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit promote: %w", err)
	}
	return m, nil
}

func (r *libraryRepository) UpdateProviders(ctx context.Context, userID uuid.UUID, movieID int, providerIDs []int) (bool, error) {
	if providerIDs == nil {
		providerIDs = []int{}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE library_movies SET provider_ids = $3, updated_at = now() WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID, providerIDs,
	)
	if err != nil {
		r.log.Error("Failed to update providers",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return false, fmt.Errorf("update providers: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *libraryRepository) Delete(ctx context.Context, userID uuid.UUID, movieID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM library_movies WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	)
	if err != nil {
		r.log.Error("Failed to delete library movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", movieID),
		)
		return false, fmt.Errorf("delete library movie: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *libraryRepository) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	var (
		count  int64
		latest time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(MAX(updated_at), 'epoch'::timestamptz) FROM library_movies WHERE user_id = $1`,
		userID,
	).Scan(&count, &latest)
	if err != nil {
		return "", fmt.Errorf("library version: %w", err)
	}
	return fmt.Sprintf("%d.%d", count, latest.UnixNano()), nil
}
