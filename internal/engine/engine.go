package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const defaultMemoEntries = 256

// Config configures an Engine.
type Config struct {
	// MemoEntries bounds each memo table. Zero uses the default, a negative
	// value disables memoization.
	MemoEntries int

	// Now supplies the current time for the preferred-year fallback.
	Now func() time.Time

	Logger *zap.Logger
}

// Profile is the affinity model plus the top-genre summary.
type Profile struct {
	GenreScores   GenreScores
	PreferredYear int
	TopGenres     []TopGenre
}

// Stats reports memo effectiveness. Each public call counts once.
type Stats struct {
	Hits   int64
	Misses int64
}

// Engine memoizes the pure functions of this package, keyed by a
// fingerprint of the input content. A memo hit returns exactly what a fresh
// computation would. Engine is safe for concurrent use.
type Engine struct {
	now      func() time.Time
	log      *zap.Logger
	affinity *memo[Affinity]
	recs     *memo[[]ScoredMovie]

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an Engine.
func New(cfg Config) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MemoEntries == 0 {
		cfg.MemoEntries = defaultMemoEntries
	}

	return &Engine{
		now:      cfg.Now,
		log:      cfg.Logger.With(zap.String("component", "engine")),
		affinity: newMemo[Affinity](cfg.MemoEntries),
		recs:     newMemo[[]ScoredMovie](cfg.MemoEntries),
	}
}

// Affinity returns the affinity model of the Seen collection.
func (e *Engine) Affinity(seen []Movie) Affinity {
	a, hit, key := e.affinityAt(seen, e.now())
	if hit {
		e.hit("affinity", key)
	} else {
		e.misses.Add(1)
	}
	return a
}

// affinityAt looks up or builds the affinity model without touching the
// hit and miss counters.
func (e *Engine) affinityAt(seen []Movie, now time.Time) (Affinity, bool, uint64) {
	key := fingerprintMovies(uint64(now.Year()), seen)

	if a, ok := e.affinity.get(key); ok {
		return cloneAffinity(a), true, key
	}

	a := BuildAffinity(seen, now)
	e.affinity.put(key, cloneAffinity(a))
	return a, false, key
}

// Profile returns the affinity model with the top genres resolved against
// the genre name table.
func (e *Engine) Profile(seen []Movie, genres map[int]string) Profile {
	a := e.Affinity(seen)
	return Profile{
		GenreScores:   a.GenreScores,
		PreferredYear: a.PreferredYear,
		TopGenres:     TopGenres(a.GenreScores, genres),
	}
}

// Recommend builds the affinity model from seen and ranks unseen against it.
// Candidates that also appear in seen are never returned.
func (e *Engine) Recommend(seen, unseen []Movie) []ScoredMovie {
	now := e.now()
	key := fingerprintMovies(fingerprintMovies(uint64(now.Year()), seen), unseen)

	if recs, ok := e.recs.get(key); ok {
		e.hit("recommend", key)
		return cloneScored(recs)
	}
	e.misses.Add(1)

	a, _, _ := e.affinityAt(seen, now)
	recs := Recommend(excludeIDs(unseen, seen), a.GenreScores, a.PreferredYear)
	e.recs.put(key, cloneScored(recs))
	return recs
}

// TopRated ranks the Seen collection. Ranking is linear, so it is not
// memoized.
func (e *Engine) TopRated(seen []Movie, filters Filters) []Movie {
	return TopRated(seen, filters)
}

// Watchlist ranks the Unseen collection.
func (e *Engine) Watchlist(unseen []Movie, filters Filters) []Movie {
	return Watchlist(unseen, filters)
}

// Stats returns memo hit and miss counters.
func (e *Engine) Stats() Stats {
	return Stats{Hits: e.hits.Load(), Misses: e.misses.Load()}
}

func (e *Engine) hit(table string, key uint64) {
	e.hits.Add(1)
	e.log.Debug("memo hit", zap.String("table", table), zap.Uint64("key", key))
}

// memo is a bounded map with first-in first-out eviction.
type memo[V any] struct {
	mu      sync.Mutex
	size    int
	entries map[uint64]V
	order   []uint64
}

func newMemo[V any](size int) *memo[V] {
	return &memo[V]{
		size:    size,
		entries: make(map[uint64]V),
	}
}

func (m *memo[V]) get(key uint64) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[key]
	return v, ok
}

func (m *memo[V]) put(key uint64, v V) {
	if m.size < 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		m.entries[key] = v
		return
	}
	for len(m.order) >= m.size {
		delete(m.entries, m.order[0])
		m.order = m.order[1:]
	}
	m.entries[key] = v
	m.order = append(m.order, key)
}

func cloneAffinity(a Affinity) Affinity {
	scores := make(GenreScores, len(a.GenreScores))
	for k, v := range a.GenreScores {
		scores[k] = v
	}
	return Affinity{GenreScores: scores, PreferredYear: a.PreferredYear}
}

func cloneScored(in []ScoredMovie) []ScoredMovie {
	out := make([]ScoredMovie, len(in))
	for i, s := range in {
		out[i] = ScoredMovie{Movie: s.Movie.Clone(), RecommendationScore: s.RecommendationScore}
	}
	return out
}
