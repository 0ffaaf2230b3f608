package response

import (
	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/engine"
)

type MovieResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	GenreIDs       []int    `json:"genre_ids"`
	ReleaseDate    string   `json:"release_date,omitempty"`
	ReleaseYear    int      `json:"release_year,omitempty"`
	Decade         string   `json:"decade,omitempty"`
	PosterURL      string   `json:"poster_url,omitempty"`
	Overview       string   `json:"overview,omitempty"`
	TMDBScore      *float64 `json:"tmdb_score,omitempty"`
	UserRating     *float64 `json:"user_rating,omitempty"`
	EloRating      *float64 `json:"elo_rating,omitempty"`
	DisplayRating  string   `json:"display_rating,omitempty"`
	ProviderIDs    []int    `json:"provider_ids"`
	Collection     string   `json:"collection,omitempty"`
	ComparisonWins int      `json:"comparison_wins"`
	GamesPlayed    int      `json:"games_played"`
}

type RecommendationResponse struct {
	MovieResponse
	Score float64 `json:"score"`
}

// Helper converters
func MovieToResponse(m engine.Movie) MovieResponse {
	resp := MovieResponse{
		ID:             m.ID,
		Title:          m.Title,
		GenreIDs:       nonNil(m.GenreIDs),
		PosterURL:      engine.PosterURL(m.PosterPath),
		Overview:       m.Overview,
		TMDBScore:      m.TMDBScore,
		UserRating:     m.UserRating,
		EloRating:      m.EloRating,
		ProviderIDs:    nonNil(m.ProviderIDs),
		ComparisonWins: m.ComparisonWins,
		GamesPlayed:    m.GamesPlayed,
	}

	if year, ok := m.ReleaseYear(); ok {
		resp.ReleaseDate = m.ReleaseDate.Format("2006-01-02")
		resp.ReleaseYear = year
		if b, ok := engine.DecadeFor(year); ok {
			resp.Decade = b.Label
		}
	}
	if display, ok := engine.DisplayRating(m); ok {
		resp.DisplayRating = display
	}
	return resp
}

func LibraryMovieToResponse(l *entity.LibraryMovie) MovieResponse {
	resp := MovieToResponse(l.ToMovie())
	resp.Collection = string(l.Collection)
	return resp
}

func MoviesToResponse(movies []engine.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}

func RecommendationsToResponse(recs []engine.ScoredMovie) []RecommendationResponse {
	out := make([]RecommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = RecommendationResponse{
			MovieResponse: MovieToResponse(r.Movie),
			Score:         r.RecommendationScore,
		}
	}
	return out
}

type TopGenreResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
	MovieCount   int     `json:"movie_count"`
}

type ProfileResponse struct {
	TopGenres     []TopGenreResponse `json:"top_genres"`
	PreferredYear int                `json:"preferred_year"`
	SeenCount     int                `json:"seen_count"`
}

func ProfileToResponse(p engine.Profile, seenCount int) ProfileResponse {
	top := make([]TopGenreResponse, len(p.TopGenres))
	for i, g := range p.TopGenres {
		top[i] = TopGenreResponse{
			ID:           g.ID,
			Name:         g.Name,
			AverageScore: g.AverageScore,
			MovieCount:   g.MovieCount,
		}
	}
	return ProfileResponse{
		TopGenres:     top,
		PreferredYear: p.PreferredYear,
		SeenCount:     seenCount,
	}
}

type DecadeResponse struct {
	Label     string `json:"label"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

func DecadesToResponse(buckets []engine.DecadeBucket) []DecadeResponse {
	out := make([]DecadeResponse, len(buckets))
	for i, b := range buckets {
		out[i] = DecadeResponse{Label: b.Label, StartYear: b.StartYear, EndYear: b.EndYear}
	}
	return out
}

func nonNil(in []int) []int {
	if in == nil {
		return []int{}
	}
	return in
}
