package request

import (
	"testing"

	"movie-ranker/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingInputAcceptsStringsAndNumbers(t *testing.T) {
	tests := []struct {
		body string
		want RatingInput
	}{
		{`{"movie_id":1,"rating":"7.5"}`, "7.5"},
		{`{"movie_id":1,"rating":7.3}`, "7.3"},
		{`{"movie_id":1,"rating":null}`, ""},
		{`{"movie_id":1}`, ""},
	}

	for _, tt := range tests {
		var req RateMovieRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.Rating, tt.body)
	}
}

func TestMovieRequestToMovie(t *testing.T) {
	req := MovieRequest{MovieID: 550, Title: "Fight Club", GenreIDs: []int{18}, ReleaseDate: "1999-10-15", PosterPath: "/p.jpg"}

	m := req.ToMovie()

	assert.Equal(t, 550, m.ID)
	year, ok := m.ReleaseYear()
	require.True(t, ok)
	assert.Equal(t, 1999, year)

	req.GenreIDs[0] = 35
	assert.Equal(t, []int{18}, m.GenreIDs)
}

func TestMovieRequestWithoutDate(t *testing.T) {
	m := (&MovieRequest{MovieID: 1, Title: "x"}).ToMovie()

	_, ok := m.ReleaseYear()
	assert.False(t, ok)
}

func TestRankingFilterValidation(t *testing.T) {
	ok := RankingFilterRequest{GenreIDs: []int{28}, Decades: []string{"pre-1970s", "2020s"}}
	assert.Nil(t, utils.ValidateStruct(ok))

	bad := RankingFilterRequest{Decades: []string{"1850s"}}
	errs := utils.ValidateStruct(bad)
	assert.Len(t, errs, 1)
}

func TestRateMovieRequestValidation(t *testing.T) {
	errs := utils.ValidateStruct(RateMovieRequest{MovieID: 1, Rating: "8", Movie: &MovieRequest{}})
	assert.Contains(t, errs, "MovieID")
	assert.Contains(t, errs, "Title")

	assert.Nil(t, utils.ValidateStruct(RateMovieRequest{MovieID: 1, Rating: "8"}))
}
