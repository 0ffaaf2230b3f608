package entity

import (
	"time"

	"movie-ranker/internal/engine"

	"github.com/google/uuid"
)

// Collection is the list a library movie belongs to. A movie is in at most
// one collection per user.
type Collection string

const (
	CollectionSeen      Collection = "seen"
	CollectionWatchlist Collection = "watchlist"
)

type LibraryMovie struct {
	UserID            uuid.UUID                `db:"user_id"`
	MovieID           int                      `db:"movie_id"`
	Collection        Collection               `db:"collection"`
	Title             string                   `db:"title"`
	GenreIDs          []int                    `db:"genre_ids"`
	ReleaseDate       *time.Time               `db:"release_date"`
	TMDBScore         *float64                 `db:"tmdb_score"`
	UserRating        *float64                 `db:"user_rating"`
	EloRating         *float64                 `db:"elo_rating"`
	PosterPath        string                   `db:"poster_path"`
	Overview          string                   `db:"overview"`
	Adult             bool                     `db:"adult"`
	ProviderIDs       []int                    `db:"provider_ids"`
	ComparisonHistory []engine.ComparisonEntry `db:"comparison_history"`
	ComparisonWins    int                      `db:"comparison_wins"`
	GamesPlayed       int                      `db:"games_played"`
	CreatedAt         time.Time                `db:"created_at"`
	UpdatedAt         time.Time                `db:"updated_at"`
}

// ToMovie converts the row into the engine's movie record.
func (l *LibraryMovie) ToMovie() engine.Movie {
	return engine.Movie{
		ID:                l.MovieID,
		Title:             l.Title,
		GenreIDs:          l.GenreIDs,
		ReleaseDate:       l.ReleaseDate,
		TMDBScore:         l.TMDBScore,
		UserRating:        l.UserRating,
		EloRating:         l.EloRating,
		PosterPath:        l.PosterPath,
		Overview:          l.Overview,
		Adult:             l.Adult,
		ProviderIDs:       l.ProviderIDs,
		ComparisonHistory: l.ComparisonHistory,
		ComparisonWins:    l.ComparisonWins,
		GamesPlayed:       l.GamesPlayed,
	}.Clone()
}

// LibraryMovieFrom builds a row for userID from an engine movie.
func LibraryMovieFrom(userID uuid.UUID, collection Collection, m engine.Movie) *LibraryMovie {
	m = m.Clone()
	if m.GenreIDs == nil {
		m.GenreIDs = []int{}
	}
	if m.ProviderIDs == nil {
		m.ProviderIDs = []int{}
	}
	if m.ComparisonHistory == nil {
		m.ComparisonHistory = []engine.ComparisonEntry{}
	}

	return &LibraryMovie{
		UserID:            userID,
		MovieID:           m.ID,
		Collection:        collection,
		Title:             m.Title,
		GenreIDs:          m.GenreIDs,
		ReleaseDate:       m.ReleaseDate,
		TMDBScore:         m.TMDBScore,
		UserRating:        m.UserRating,
		EloRating:         m.EloRating,
		PosterPath:        m.PosterPath,
		Overview:          m.Overview,
		Adult:             m.Adult,
		ProviderIDs:       m.ProviderIDs,
		ComparisonHistory: m.ComparisonHistory,
		ComparisonWins:    m.ComparisonWins,
		GamesPlayed:       m.GamesPlayed,
	}
}

// ToMovies converts a result set.
func ToMovies(rows []*LibraryMovie) []engine.Movie {
	out := make([]engine.Movie, len(rows))
	for i, r := range rows {
		out[i] = r.ToMovie()
	}
	return out
}
