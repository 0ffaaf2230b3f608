package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// fingerprinter streams every field of a movie into an xxhash digest.
// Pass-through fields are included because memoized results carry them.
type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (f *fingerprinter) putU64(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}

func (f *fingerprinter) putInt(v int) { f.putU64(uint64(v)) }

func (f *fingerprinter) putBool(v bool) {
	if v {
		f.putU64(1)
		return
	}
	f.putU64(0)
}

func (f *fingerprinter) putStr(s string) {
	f.putInt(len(s))
	_, _ = f.d.WriteString(s)
}

func (f *fingerprinter) putInts(v []int) {
	f.putInt(len(v))
	for _, x := range v {
		f.putInt(x)
	}
}

func (f *fingerprinter) putFloat(p *float64) {
	if p == nil {
		f.putBool(false)
		return
	}
	f.putBool(true)
	f.putU64(math.Float64bits(*p))
}

func (f *fingerprinter) movie(m Movie) {
	f.putInt(m.ID)
	f.putStr(m.Title)
	f.putInts(m.GenreIDs)
	if m.ReleaseDate != nil {
		f.putBool(true)
		f.putU64(uint64(m.ReleaseDate.UnixNano()))
	} else {
		f.putBool(false)
	}
	f.putFloat(m.TMDBScore)
	f.putFloat(m.UserRating)
	f.putFloat(m.EloRating)
	f.putStr(m.PosterPath)
	f.putStr(m.Overview)
	f.putBool(m.Adult)
	f.putInts(m.ProviderIDs)
	f.putInt(len(m.ComparisonHistory))
	for _, c := range m.ComparisonHistory {
		f.putInt(c.OpponentID)
		f.putBool(c.Won)
		f.putU64(uint64(c.At.UnixNano()))
	}
	f.putInt(m.ComparisonWins)
	f.putInt(m.GamesPlayed)
}

// fingerprintMovies chains seed with the content of movies. Order matters:
// the scorer's tie-break depends on input order.
func fingerprintMovies(seed uint64, movies []Movie) uint64 {
	f := fingerprinter{d: xxhash.New()}
	f.putU64(seed)
	f.putInt(len(movies))
	for _, m := range movies {
		f.movie(m)
	}
	return f.d.Sum64()
}

// Fingerprint returns a content-derived version of a movie collection,
// suitable as a cache key component.
func Fingerprint(movies []Movie) uint64 {
	return fingerprintMovies(0, movies)
}
