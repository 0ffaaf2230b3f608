package response

import (
	"testing"
	"time"

	"movie-ranker/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestMovieToResponse(t *testing.T) {
	d := time.Date(1975, time.June, 20, 0, 0, 0, 0, time.UTC)
	m := engine.Movie{ID: 578, Title: "Jaws", ReleaseDate: &d, PosterPath: "/jaws.jpg", EloRating: engine.Float(843)}

	resp := MovieToResponse(m)

	assert.Equal(t, "1975-06-20", resp.ReleaseDate)
	assert.Equal(t, 1975, resp.ReleaseYear)
	assert.Equal(t, "1970s", resp.Decade)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/jaws.jpg", resp.PosterURL)
	assert.Equal(t, "8.4", resp.DisplayRating)
	assert.Nil(t, resp.UserRating)
	assert.Equal(t, []int{}, resp.GenreIDs)
}

func TestProvidersToResponse(t *testing.T) {
	resp := ProvidersToResponse([]engine.Provider{{ProviderID: 9, ProviderName: "Amazon Prime Video", LogoPath: "/p.jpg"}})

	assert.Equal(t, []ProviderResponse{{
		ProviderID:   9,
		ProviderName: "Amazon Prime Video",
		Key:          "prime",
		LogoURL:      "https://image.tmdb.org/t/p/w92/p.jpg",
	}}, resp)
}

func TestGenreNames(t *testing.T) {
	names := GenreNames([]GenreResponse{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}})

	assert.Equal(t, map[int]string{28: "Action", 35: "Comedy"}, names)
	assert.Empty(t, GenreNames(nil))
}
