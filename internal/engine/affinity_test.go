package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now2025 = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestBuildAffinityAccumulatesWeights(t *testing.T) {
	seen := []Movie{
		newMovie(1).genres(28, 12).rated(8).build(),
		newMovie(2).genres(28).rated(6).build(),
		newMovie(3).genres(12).elo(900).build(), // legacy entry, Elo only
	}

	a := BuildAffinity(seen, now2025)

	assert.Equal(t, GenreAffinity{TotalWeight: 14, Count: 2}, a.GenreScores[28])
	assert.Equal(t, GenreAffinity{TotalWeight: 17, Count: 2}, a.GenreScores[12])
}

func TestBuildAffinitySkipsUnratedMovies(t *testing.T) {
	seen := []Movie{
		newMovie(1).genres(18).build(),
		newMovie(2).genres(18).rated(7).build(),
	}

	a := BuildAffinity(seen, now2025)

	assert.Equal(t, GenreAffinity{TotalWeight: 7, Count: 1}, a.GenreScores[18])
}

func TestBuildAffinityPreferredYear(t *testing.T) {
	t.Run("weighted average over dated movies", func(t *testing.T) {
		seen := []Movie{
			newMovie(1).released(2000).rated(9).build(),
			newMovie(2).released(2010).rated(1).build(),
			newMovie(3).rated(10).build(), // undated, ignored for the year
		}

		a := BuildAffinity(seen, now2025)

		// (2000*9 + 2010*1) / 10 = 2001
		assert.Equal(t, 2001, a.PreferredYear)
	})

	t.Run("falls back to ten years ago", func(t *testing.T) {
		a := BuildAffinity([]Movie{newMovie(1).rated(8).build()}, now2025)
		assert.Equal(t, 2015, a.PreferredYear)
	})

	t.Run("empty seen", func(t *testing.T) {
		a := BuildAffinity(nil, now2025)
		assert.Empty(t, a.GenreScores)
		assert.Equal(t, 2015, a.PreferredYear)
	})
}

func TestTopGenres(t *testing.T) {
	scores := GenreScores{
		28:  {TotalWeight: 16, Count: 2}, // 8.0
		12:  {TotalWeight: 27, Count: 3}, // 9.0
		18:  {TotalWeight: 10, Count: 1}, // single rating, excluded
		35:  {TotalWeight: 12, Count: 2}, // 6.0
		878: {TotalWeight: 14, Count: 2}, // 7.0
		27:  {TotalWeight: 10, Count: 2}, // 5.0
		53:  {TotalWeight: 8, Count: 2},  // 4.0
	}
	names := map[int]string{28: "Action", 12: "Adventure", 35: "Comedy"}

	top := TopGenres(scores, names)

	require.Len(t, top, 5)
	assert.Equal(t, []int{12, 28, 878, 35, 27}, []int{top[0].ID, top[1].ID, top[2].ID, top[3].ID, top[4].ID})
	assert.Equal(t, "Adventure", top[0].Name)
	assert.Equal(t, 9.0, top[0].AverageScore)
	assert.Equal(t, 3, top[0].MovieCount)

	for i, g := range top {
		assert.GreaterOrEqual(t, g.MovieCount, 2)
		if i > 0 {
			assert.LessOrEqual(t, g.AverageScore, top[i-1].AverageScore)
		}
	}
}

func TestTopGenresTieBreakIsDeterministic(t *testing.T) {
	scores := GenreScores{
		3: {TotalWeight: 16, Count: 2},
		1: {TotalWeight: 16, Count: 2},
		2: {TotalWeight: 24, Count: 3},
	}

	for i := 0; i < 20; i++ {
		top := TopGenres(scores, nil)
		require.Len(t, top, 3)
		assert.Equal(t, []int{2, 1, 3}, []int{top[0].ID, top[1].ID, top[2].ID})
	}
}

func TestGenreAffinityAverageScoreGuardsZero(t *testing.T) {
	assert.Equal(t, 0.0, GenreAffinity{}.AverageScore())
}
