package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecadeFor(t *testing.T) {
	tests := []struct {
		year  int
		label string
		ok    bool
	}{
		{1975, "1970s", true},
		{1970, "1970s", true},
		{1979, "1970s", true},
		{1969, PreSeventiesLabel, true},
		{1900, PreSeventiesLabel, true},
		{2024, "2020s", true},
		{1899, "", false},
	}

	for _, tt := range tests {
		b, ok := DecadeFor(tt.year)
		assert.Equal(t, tt.ok, ok, "year %d", tt.year)
		assert.Equal(t, tt.label, b.Label, "year %d", tt.year)
	}
}

func TestEffectiveScore(t *testing.T) {
	s, ok := EffectiveScore(newMovie(1).rated(7).build())
	assert.True(t, ok)
	assert.Equal(t, 7.0, s)

	s, ok = EffectiveScore(newMovie(1).elo(650).build())
	assert.True(t, ok)
	assert.Equal(t, 6.5, s)

	_, ok = EffectiveScore(newMovie(1).build())
	assert.False(t, ok)
}

func TestRankMixedRatedAndLegacyItems(t *testing.T) {
	// Each item is scored on its own: a legacy Elo-only entry must sit
	// between rated entries according to elo/100.
	movies := []Movie{
		newMovie(1).rated(6).build(),
		newMovie(2).elo(850).build(),
		newMovie(3).rated(9).build(),
		newMovie(4).build(),
		newMovie(5).elo(300).build(),
	}

	got := Rank(movies, Filters{})

	assert.Equal(t, []int{3, 2, 1, 5, 4}, ids(got))
}

func TestRankStableOnTies(t *testing.T) {
	movies := []Movie{
		newMovie(4).rated(7).build(),
		newMovie(2).elo(700).build(),
		newMovie(9).rated(7).build(),
	}

	assert.Equal(t, []int{4, 2, 9}, ids(Rank(movies, Filters{})))
}

func TestRankFilters(t *testing.T) {
	movies := []Movie{
		newMovie(1).genres(28).released(1975).providers(8).rated(9).build(),
		newMovie(2).genres(35).released(1975).providers(337).rated(8).build(),
		newMovie(3).genres(28, 35).released(1995).providers(8, 9).rated(7).build(),
		newMovie(4).genres(18).released(1960).rated(6).build(),
		newMovie(5).genres(28).rated(5).build(),
	}

	tests := []struct {
		name    string
		filters Filters
		want    []int
	}{
		{
			name:    "no filters is identity",
			filters: Filters{},
			want:    []int{1, 2, 3, 4, 5},
		},
		{
			name:    "genres OR",
			filters: Filters{GenreIDs: []int{35, 18}},
			want:    []int{2, 3, 4},
		},
		{
			name:    "decades OR",
			filters: Filters{Decades: []string{"1970s", PreSeventiesLabel}},
			want:    []int{1, 2, 4},
		},
		{
			name:    "services",
			filters: Filters{ServiceIDs: []int{9}},
			want:    []int{3},
		},
		{
			name:    "categories AND",
			filters: Filters{GenreIDs: []int{28}, Decades: []string{"1970s"}},
			want:    []int{1},
		},
		{
			name:    "all three categories",
			filters: Filters{GenreIDs: []int{35}, Decades: []string{"1990s"}, ServiceIDs: []int{8}},
			want:    []int{3},
		},
		{
			name:    "unknown decade matches nothing",
			filters: Filters{Decades: []string{"1850s"}},
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Rank(movies, tt.filters)))
		})
	}
}

func TestTopRatedCap(t *testing.T) {
	var seen []Movie
	for i := 1; i <= 15; i++ {
		seen = append(seen, newMovie(i).rated(float64(i%10)+1).build())
	}

	top := TopRated(seen, Filters{})

	require.Len(t, top, MaxTopRated)
	for i := 1; i < len(top); i++ {
		prev, _ := EffectiveScore(top[i-1])
		cur, _ := EffectiveScore(top[i])
		assert.LessOrEqual(t, cur, prev)
	}
}

func TestWatchlistUncapped(t *testing.T) {
	var unseen []Movie
	for i := 1; i <= 30; i++ {
		unseen = append(unseen, newMovie(i).build())
	}

	got := Watchlist(unseen, Filters{})

	assert.Len(t, got, 30)
	assert.Equal(t, ids(unseen), ids(got))
}
