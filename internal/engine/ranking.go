package engine

import (
	"slices"
	"sort"
)

// MaxTopRated caps the top-rated view.
const MaxTopRated = 10

// DecadeBucket is an inclusive release-year range used by the decade filter.
type DecadeBucket struct {
	Label     string
	StartYear int
	EndYear   int
}

// Contains reports whether year falls inside the bucket.
func (b DecadeBucket) Contains(year int) bool {
	return year >= b.StartYear && year <= b.EndYear
}

// PreSeventiesLabel names the catch-all bucket for older titles.
const PreSeventiesLabel = "pre-1970s"

// DecadeBuckets is the fixed set of selectable decades.
var DecadeBuckets = []DecadeBucket{
	{Label: PreSeventiesLabel, StartYear: 1900, EndYear: 1969},
	{Label: "1970s", StartYear: 1970, EndYear: 1979},
	{Label: "1980s", StartYear: 1980, EndYear: 1989},
	{Label: "1990s", StartYear: 1990, EndYear: 1999},
	{Label: "2000s", StartYear: 2000, EndYear: 2009},
	{Label: "2010s", StartYear: 2010, EndYear: 2019},
	{Label: "2020s", StartYear: 2020, EndYear: 2029},
}

// DecadeFor returns the bucket a year classifies into.
func DecadeFor(year int) (DecadeBucket, bool) {
	for _, b := range DecadeBuckets {
		if b.Contains(year) {
			return b, true
		}
	}
	return DecadeBucket{}, false
}

// DecadeByLabel looks a bucket up by its label.
func DecadeByLabel(label string) (DecadeBucket, bool) {
	for _, b := range DecadeBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return DecadeBucket{}, false
}

// Filters selects a subset of a collection. Categories combine with AND,
// selections inside one category combine with OR, and an empty category is
// ignored.
type Filters struct {
	GenreIDs   []int
	Decades    []string
	ServiceIDs []int
}

// IsEmpty reports whether no category is selected.
func (f Filters) IsEmpty() bool {
	return len(f.GenreIDs) == 0 && len(f.Decades) == 0 && len(f.ServiceIDs) == 0
}

// Match reports whether m passes every selected category.
func (f Filters) Match(m Movie) bool {
	if len(f.GenreIDs) > 0 && !intersects(m.GenreIDs, f.GenreIDs) {
		return false
	}
	if len(f.Decades) > 0 && !f.matchDecade(m) {
		return false
	}
	if len(f.ServiceIDs) > 0 && !intersects(m.ProviderIDs, f.ServiceIDs) {
		return false
	}
	return true
}

func (f Filters) matchDecade(m Movie) bool {
	year, ok := m.ReleaseYear()
	if !ok {
		return false
	}
	for _, label := range f.Decades {
		if b, ok := DecadeByLabel(label); ok && b.Contains(year) {
			return true
		}
	}
	return false
}

// EffectiveScore is the value used for ordering: the user rating when
// present, else Elo/100. It is computed for each movie on its own so mixed
// rated and legacy collections order consistently.
func EffectiveScore(m Movie) (float64, bool) {
	if m.UserRating != nil {
		return *m.UserRating, true
	}
	if m.EloRating != nil {
		return *m.EloRating / EloScale, true
	}
	return 0, false
}

// Rank filters movies and stably sorts them by effective score, highest
// first. Unscored movies sort as 0.
func Rank(movies []Movie, filters Filters) []Movie {
	type ranked struct {
		movie Movie
		score float64
	}

	rows := make([]ranked, 0, len(movies))
	for _, m := range movies {
		if !filters.Match(m) {
			continue
		}
		score, _ := EffectiveScore(m)
		rows = append(rows, ranked{movie: m.Clone(), score: score})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})

	out := make([]Movie, len(rows))
	for i, r := range rows {
		out[i] = r.movie
	}
	return out
}

// TopRated is the ranked Seen view, capped at MaxTopRated.
func TopRated(seen []Movie, filters Filters) []Movie {
	out := Rank(seen, filters)
	if len(out) > MaxTopRated {
		out = out[:MaxTopRated]
	}
	return out
}

// Watchlist is the ranked Unseen view. It is not capped.
func Watchlist(unseen []Movie, filters Filters) []Movie {
	return Rank(unseen, filters)
}

func intersects(have, want []int) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
