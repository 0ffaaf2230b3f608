package engine

import (
	"math"
	"sort"
)

const (
	// MaxRecommendations caps the scorer output.
	MaxRecommendations = 20

	genreMatchWeight    = 0.7
	yearProximityWeight = 0.3

	// yearWindow is the distance in years at which proximity reaches zero.
	yearWindow = 50.0
)

// YearProximity scores how close a candidate's release year is to the
// preferred year, in [0, 1]. Undated candidates score 0.
func YearProximity(m Movie, preferredYear int) float64 {
	year, ok := m.ReleaseYear()
	if !ok {
		return 0
	}
	diff := math.Abs(float64(year - preferredYear))
	return math.Max(0, 1-diff/yearWindow)
}

// GenreMatchScore sums the affinity weight of every genre on the candidate.
// Genres missing from the profile contribute nothing.
func GenreMatchScore(m Movie, scores GenreScores) float64 {
	var total float64
	for _, g := range m.GenreIDs {
		total += scores[g].TotalWeight
	}
	return total
}

// RecommendationScore combines genre match and year proximity.
func RecommendationScore(m Movie, scores GenreScores, preferredYear int) float64 {
	return genreMatchWeight*GenreMatchScore(m, scores) +
		yearProximityWeight*YearProximity(m, preferredYear)
}

// Recommend ranks the unseen candidate pool against a genre profile. The
// pool is content-filtered, candidates without a poster are dropped, and the
// remainder is stably sorted by score and capped at MaxRecommendations.
func Recommend(unseen []Movie, scores GenreScores, preferredYear int) []ScoredMovie {
	candidates := FilterContent(unseen)

	out := make([]ScoredMovie, 0, len(candidates))
	for _, m := range candidates {
		if m.PosterPath == "" {
			continue
		}
		out = append(out, ScoredMovie{
			Movie:               m.Clone(),
			RecommendationScore: RecommendationScore(m, scores, preferredYear),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationScore > out[j].RecommendationScore
	})

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

// excludeIDs drops every candidate whose id appears in seen. The caller
// keeps Seen and Unseen disjoint already; this holds the guarantee even
// when a stale snapshot breaks that.
func excludeIDs(candidates, seen []Movie) []Movie {
	if len(seen) == 0 {
		return candidates
	}
	ids := make(map[int]struct{}, len(seen))
	for _, m := range seen {
		ids[m.ID] = struct{}{}
	}
	out := make([]Movie, 0, len(candidates))
	for _, m := range candidates {
		if _, ok := ids[m.ID]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}
