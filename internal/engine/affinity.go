package engine

import (
	"math"
	"sort"
	"time"
)

const (
	// minGenreCount keeps single ratings from dominating the top genres.
	minGenreCount = 2
	maxTopGenres  = 5

	// fallbackYearOffset is subtracted from the current year when no rated
	// movie carries a release date.
	fallbackYearOffset = 10
)

// GenreAffinity accumulates rating weight for one genre.
type GenreAffinity struct {
	TotalWeight float64
	Count       int
}

// AverageScore returns TotalWeight/Count, or 0 for an empty accumulator.
func (a GenreAffinity) AverageScore() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.TotalWeight / float64(a.Count)
}

// GenreScores maps genre id to its affinity.
type GenreScores map[int]GenreAffinity

// TopGenre is one entry of a user's favourite genres.
type TopGenre struct {
	ID           int
	Name         string
	AverageScore float64
	MovieCount   int
}

// Affinity is the derived preference profile of a Seen collection.
type Affinity struct {
	GenreScores   GenreScores
	PreferredYear int
}

// BuildAffinity derives genre scores and the preferred release year from the
// Seen collection. Movies with neither a user rating nor an Elo rating carry
// no information and are skipped.
func BuildAffinity(seen []Movie, now time.Time) Affinity {
	scores := make(GenreScores)

	var yearSum, yearWeight float64
	for _, m := range seen {
		w, ok := EffectiveScore(m)
		if !ok {
			continue
		}

		for _, g := range m.GenreIDs {
			a := scores[g]
			a.TotalWeight += w
			a.Count++
			scores[g] = a
		}

		if year, ok := m.ReleaseYear(); ok {
			yearSum += float64(year) * w
			yearWeight += w
		}
	}

	preferred := now.Year() - fallbackYearOffset
	if yearWeight > 0 {
		preferred = int(math.Round(yearSum / yearWeight))
	}

	return Affinity{
		GenreScores:   scores,
		PreferredYear: preferred,
	}
}

// TopGenres returns up to five genres rated at least twice, ordered by
// average score. Ties fall back to movie count and then genre id so the
// ordering never depends on map iteration.
func TopGenres(scores GenreScores, names map[int]string) []TopGenre {
	out := make([]TopGenre, 0, len(scores))
	for id, a := range scores {
		if a.Count < minGenreCount {
			continue
		}
		out = append(out, TopGenre{
			ID:           id,
			Name:         names[id],
			AverageScore: a.AverageScore(),
			MovieCount:   a.Count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageScore != out[j].AverageScore {
			return out[i].AverageScore > out[j].AverageScore
		}
		if out[i].MovieCount != out[j].MovieCount {
			return out[i].MovieCount > out[j].MovieCount
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > maxTopGenres {
		out = out[:maxTopGenres]
	}
	return out
}
