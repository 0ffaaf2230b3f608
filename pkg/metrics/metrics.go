// Package metrics holds the Prometheus collectors of the service.
//
// HTTP traffic, TMDB calls, circuit breaker state and cache lookups are
// recorded through the package-level vectors. Engine memo counters are
// exported through RegisterEngine.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_ranker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_ranker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// TMDBRequestsTotal counts upstream calls by endpoint and outcome
	// (success, failure, rejected).
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_ranker_tmdb_requests_total",
			Help: "Total number of TMDB API calls",
		},
		[]string{"endpoint", "outcome"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "movie_ranker_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// CacheLookupsTotal counts response cache lookups by result
	// (hit, miss, error).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_ranker_cache_lookups_total",
			Help: "Total number of response cache lookups",
		},
		[]string{"cache", "result"},
	)
)

// ObserveHTTP records one finished request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RegisterEngine exports memo hit and miss counters read from stats.
// Registering a second engine is a no-op.
func RegisterEngine(stats func() (hits, misses int64)) error {
	hits := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "movie_ranker_engine_memo_hits_total",
		Help: "Engine memo hits",
	}, func() float64 {
		h, _ := stats()
		return float64(h)
	})
	misses := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "movie_ranker_engine_memo_misses_total",
		Help: "Engine memo misses",
	}, func() float64 {
		_, m := stats()
		return float64(m)
	})

	for _, c := range []prometheus.Collector{hits, misses} {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
