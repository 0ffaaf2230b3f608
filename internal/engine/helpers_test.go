package engine

import (
	"time"
)

type movieBuilder struct {
	m Movie
}

func newMovie(id int) *movieBuilder {
	return &movieBuilder{m: Movie{ID: id, Title: "Movie", PosterPath: "/poster.jpg"}}
}

func (b *movieBuilder) title(t string) *movieBuilder {
	b.m.Title = t
	return b
}

func (b *movieBuilder) overview(o string) *movieBuilder {
	b.m.Overview = o
	return b
}

func (b *movieBuilder) genres(ids ...int) *movieBuilder {
	b.m.GenreIDs = ids
	return b
}

func (b *movieBuilder) released(year int) *movieBuilder {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	b.m.ReleaseDate = &d
	return b
}

func (b *movieBuilder) rated(r float64) *movieBuilder {
	b.m.UserRating = Float(r)
	b.m.EloRating = Float(r * EloScale)
	return b
}

func (b *movieBuilder) elo(e float64) *movieBuilder {
	b.m.EloRating = Float(e)
	return b
}

func (b *movieBuilder) adult() *movieBuilder {
	b.m.Adult = true
	return b
}

func (b *movieBuilder) noPoster() *movieBuilder {
	b.m.PosterPath = ""
	return b
}

func (b *movieBuilder) providers(ids ...int) *movieBuilder {
	b.m.ProviderIDs = ids
	return b
}

func (b *movieBuilder) build() Movie {
	return b.m
}

func ids(movies []Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func scoredIDs(movies []ScoredMovie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}
