package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	tests := []struct {
		name   string
		movies []Movie
		want   []int
	}{
		{
			name:   "nil input",
			movies: nil,
			want:   []int{},
		},
		{
			name: "adult flag excluded unconditionally",
			movies: []Movie{
				newMovie(1).build(),
				newMovie(2).adult().build(),
			},
			want: []int{1},
		},
		{
			name: "blacklisted keyword in title is case insensitive",
			movies: []Movie{
				newMovie(1).title("Totally EROTIC Thriller").build(),
				newMovie(2).title("Heat").build(),
			},
			want: []int{2},
		},
		{
			name: "blacklisted keyword in overview",
			movies: []Movie{
				newMovie(1).overview("A softcore romp").build(),
				newMovie(2).overview("A heist goes wrong").build(),
			},
			want: []int{2},
		},
		{
			name: "documentary with sex in title",
			movies: []Movie{
				newMovie(1).title("Sex Education Lessons").genres(DocumentaryGenreID).build(),
				newMovie(2).title("Sex and the City").genres(35).build(),
				newMovie(3).title("Planet Earth").genres(DocumentaryGenreID).build(),
			},
			want: []int{2, 3},
		},
		{
			name: "order preserved",
			movies: []Movie{
				newMovie(5).build(),
				newMovie(3).adult().build(),
				newMovie(9).build(),
				newMovie(1).build(),
			},
			want: []int{5, 9, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterContent(tt.movies)))
		})
	}
}

func TestFilterContentIdempotent(t *testing.T) {
	movies := []Movie{
		newMovie(1).build(),
		newMovie(2).adult().build(),
		newMovie(3).title("xxx").build(),
		newMovie(4).title("Sexy Beast").genres(DocumentaryGenreID).build(),
		newMovie(5).title("Alien").genres(878).build(),
	}

	once := FilterContent(movies)
	twice := FilterContent(once)

	assert.Equal(t, once, twice)
}

func TestFilterContentDoesNotMutateInput(t *testing.T) {
	movies := []Movie{newMovie(1).adult().build(), newMovie(2).build()}

	_ = FilterContent(movies)

	assert.Equal(t, []int{1, 2}, ids(movies))
}
