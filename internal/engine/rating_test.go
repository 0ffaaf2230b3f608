package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRating(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "7.5", want: 7.5},
		{raw: "1", want: 1},
		{raw: "10.0", want: 10},
		{raw: " 8.2 ", want: 8.2},
		{raw: "11", wantErr: true},
		{raw: "0.9", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "seven", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "0x1p3", wantErr: true},
		{raw: "1e1", wantErr: true},
		{raw: "+8", wantErr: true},
		{raw: "8.", wantErr: true},
		{raw: "1_0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ValidateRating(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRating))

				var ire *InvalidRatingError
				require.True(t, errors.As(err, &ire))
				assert.Equal(t, tt.raw, ire.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToElo(t *testing.T) {
	tests := []struct {
		rating float64
		want   float64
	}{
		{7.5, 750},
		{7.3, 730},
		{1.1, 110},
		{10, 1000},
		{8.25, 825},
		{6.125, 612.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToElo(tt.rating), "rating %v", tt.rating)
	}
}

func TestApplyRatingScenario(t *testing.T) {
	rating, err := ValidateRating("7.5")
	require.NoError(t, err)

	history := []ComparisonEntry{{OpponentID: 4, Won: true, At: time.Unix(100, 0)}}
	m := Movie{ID: 1, ComparisonHistory: history, ComparisonWins: 3, GamesPlayed: 5}

	rated := ApplyRating(m, rating)

	require.NotNil(t, rated.UserRating)
	require.NotNil(t, rated.EloRating)
	assert.Equal(t, 7.5, *rated.UserRating)
	assert.Equal(t, 750.0, *rated.EloRating)
	assert.Equal(t, history, rated.ComparisonHistory)
	assert.Equal(t, 3, rated.ComparisonWins)
	assert.Equal(t, 5, rated.GamesPlayed)
	assert.Nil(t, m.UserRating, "input must not be mutated")
}

func TestDisplayRating(t *testing.T) {
	tests := []struct {
		name   string
		movie  Movie
		want   string
		wantOK bool
	}{
		{"user rating", newMovie(1).rated(7.5).build(), "7.5", true},
		{"user rating wins over elo", Movie{UserRating: Float(6), EloRating: Float(900)}, "6.0", true},
		{"elo fallback", newMovie(1).elo(843).build(), "8.4", true},
		{"nothing to show", newMovie(1).build(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DisplayRating(tt.movie)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayRatingDoesNotWriteBack(t *testing.T) {
	m := newMovie(1).elo(720).build()

	_, _ = DisplayRating(m)

	assert.Nil(t, m.UserRating)
}
