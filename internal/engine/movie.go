// Package engine turns a user's rated-movie history into genre affinity,
// recommendations and ranked views. Every function in this package is pure:
// inputs are treated as read-only snapshots and results are freshly
// allocated.
package engine

import (
	"time"
)

const (
	posterBaseURL = "https://image.tmdb.org/t/p/w500"
	logoBaseURL   = "https://image.tmdb.org/t/p/w92"

	// DocumentaryGenreID is the TMDB genre id for documentaries.
	DocumentaryGenreID = 99
)

// ComparisonEntry is one record written by the pairwise comparison engine.
// The engine never interprets or rewrites it.
type ComparisonEntry struct {
	OpponentID int       `json:"opponent_id"`
	Won        bool      `json:"won"`
	At         time.Time `json:"at"`
}

// Movie is a single title as seen by the ranking engine.
type Movie struct {
	ID          int
	Title       string
	GenreIDs    []int
	ReleaseDate *time.Time
	TMDBScore   *float64
	UserRating  *float64
	EloRating   *float64
	PosterPath  string
	Overview    string
	Adult       bool

	// ProviderIDs lists the streaming services the title is available on.
	// It is supplied by the caller and only read by the service filter.
	ProviderIDs []int

	// Pass-through state owned by the comparison engine.
	ComparisonHistory []ComparisonEntry
	ComparisonWins    int
	GamesPlayed       int
}

// ReleaseYear returns the release year, or false when the date is unknown.
func (m Movie) ReleaseYear() (int, bool) {
	if m.ReleaseDate == nil || m.ReleaseDate.IsZero() {
		return 0, false
	}
	return m.ReleaseDate.Year(), true
}

// Clone returns a deep copy so results never alias caller slices.
func (m Movie) Clone() Movie {
	out := m
	out.GenreIDs = cloneInts(m.GenreIDs)
	out.ProviderIDs = cloneInts(m.ProviderIDs)
	if m.ReleaseDate != nil {
		d := *m.ReleaseDate
		out.ReleaseDate = &d
	}
	out.TMDBScore = cloneFloat(m.TMDBScore)
	out.UserRating = cloneFloat(m.UserRating)
	out.EloRating = cloneFloat(m.EloRating)
	if m.ComparisonHistory != nil {
		out.ComparisonHistory = make([]ComparisonEntry, len(m.ComparisonHistory))
		copy(out.ComparisonHistory, m.ComparisonHistory)
	}
	return out
}

// ScoredMovie is a recommendation candidate with its computed score.
type ScoredMovie struct {
	Movie
	RecommendationScore float64
}

// Provider is a raw streaming-service record from the metadata service.
type Provider struct {
	ProviderID   int
	ProviderName string
	LogoPath     string
}

// PosterURL builds the w500 poster URL, or "" when there is no poster.
func PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return posterBaseURL + posterPath
}

// LogoURL builds the w92 provider logo URL, or "" when there is no logo.
func LogoURL(logoPath string) string {
	if logoPath == "" {
		return ""
	}
	return logoBaseURL + logoPath
}

// Float returns a pointer to v. Handy for optional fields.
func Float(v float64) *float64 {
	return &v
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	copy(out, in)
	return out
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
