package request

import (
	"strconv"
	"strings"
	"time"

	"movie-ranker/internal/engine"
)

const dateLayout = "2006-01-02"

// MovieRequest carries the TMDB metadata of a title being added to a
// library collection.
type MovieRequest struct {
	MovieID     int      `json:"movie_id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,min=1,max=300"`
	GenreIDs    []int    `json:"genre_ids" validate:"dive,gt=0"`
	ReleaseDate string   `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TMDBScore   *float64 `json:"tmdb_score,omitempty" validate:"omitempty,min=0,max=10"`
	PosterPath  string   `json:"poster_path,omitempty" validate:"max=200"`
	Overview    string   `json:"overview,omitempty"`
	Adult       bool     `json:"adult"`
	ProviderIDs []int    `json:"provider_ids,omitempty" validate:"dive,gt=0"`
}

// ToMovie converts a validated request. An empty or unparsable date is left
// unknown.
func (r *MovieRequest) ToMovie() engine.Movie {
	m := engine.Movie{
		ID:          r.MovieID,
		Title:       r.Title,
		GenreIDs:    r.GenreIDs,
		TMDBScore:   r.TMDBScore,
		PosterPath:  r.PosterPath,
		Overview:    r.Overview,
		Adult:       r.Adult,
		ProviderIDs: r.ProviderIDs,
	}
	if d, err := time.Parse(dateLayout, r.ReleaseDate); err == nil {
		m.ReleaseDate = &d
	}
	return m.Clone()
}

// RatingInput accepts a rating sent either as a JSON string or a JSON
// number and keeps its raw text for engine.ValidateRating.
type RatingInput string

func (r *RatingInput) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "null" {
		s = ""
	}
	*r = RatingInput(s)
	return nil
}

// RateMovieRequest rates a movie. Movie is only needed when the title is in
// neither collection yet.
type RateMovieRequest struct {
	MovieID int           `json:"movie_id" validate:"required,gt=0"`
	Rating  RatingInput   `json:"rating" validate:"required"`
	Movie   *MovieRequest `json:"movie,omitempty"`
}

type SetProvidersRequest struct {
	ProviderIDs []int `json:"provider_ids" validate:"dive,gt=0"`
}

// RankingFilterRequest is parsed from the query string of the ranked views.
type RankingFilterRequest struct {
	GenreIDs   []int    `validate:"dive,gt=0"`
	Decades    []string `validate:"dive,oneof=pre-1970s 1970s 1980s 1990s 2000s 2010s 2020s"`
	ServiceIDs []int    `validate:"dive,gt=0"`
}

func (r *RankingFilterRequest) ToFilters() engine.Filters {
	return engine.Filters{
		GenreIDs:   r.GenreIDs,
		Decades:    r.Decades,
		ServiceIDs: r.ServiceIDs,
	}
}

type ProvidersRequest struct {
	MovieID int    `validate:"required,gt=0"`
	Region  string `validate:"required,iso3166_1_alpha2"`
}
