// Package tmdb is a small client for the TMDB v3 API.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-ranker/pkg/metrics"
	"movie-ranker/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const breakerName = "tmdb-api"

var (
	// ErrNotFound is returned for a 404 from TMDB.
	ErrNotFound = errors.New("tmdb: not found")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("tmdb: unavailable")
)

// Genre is an entry of /genre/movie/list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// WatchProvider is one streaming offer of /movie/{id}/watch/providers.
type WatchProvider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

type regionProviders struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
	Free     []WatchProvider `json:"free"`
	Ads      []WatchProvider `json:"ads"`
}

type watchProvidersResponse struct {
	ID      int                        `json:"id"`
	Results map[string]regionProviders `json:"results"`
}

// Client calls TMDB through a rate limiter and a circuit breaker. The
// breaker fails fast; there are no retries.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
	log     *zap.Logger
}

// NewClient builds a client from config.
func NewClient(cfg utils.TMDBConfig, log *zap.Logger) *Client {
	log = log.With(zap.String("client", "tmdb"))

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		cb:      cb,
		log:     log,
	}
}

// GetGenres fetches the movie genre table.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	var result genreListResponse
	if err := c.getJSON(ctx, "genres", "/genre/movie/list", nil, &result); err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return result.Genres, nil
}

// GetWatchProviders returns the flat-rate, free and ad-supported offers of
// movieID in region, in that order. A region without offers yields an empty
// slice.
func (c *Client) GetWatchProviders(ctx context.Context, movieID int, region string) ([]WatchProvider, error) {
	var result watchProvidersResponse
	path := fmt.Sprintf("/movie/%d/watch/providers", movieID)
	if err := c.getJSON(ctx, "watch_providers", path, nil, &result); err != nil {
		return nil, fmt.Errorf("get watch providers for %d: %w", movieID, err)
	}

	offers, ok := result.Results[region]
	if !ok {
		return []WatchProvider{}, nil
	}

	out := make([]WatchProvider, 0, len(offers.Flatrate)+len(offers.Free)+len(offers.Ads))
	out = append(out, offers.Flatrate...)
	out = append(out, offers.Free...)
	out = append(out, offers.Ads...)
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	target := c.baseURL + path + "?" + query.Encode()

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, path, target)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.TMDBRequestsTotal.WithLabelValues(endpoint, "rejected").Inc()
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		metrics.TMDBRequestsTotal.WithLabelValues(endpoint, "failure").Inc()
		return err
	}
	metrics.TMDBRequestsTotal.WithLabelValues(endpoint, "success").Inc()

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// do performs the request. Errors name only path: target carries the API
// key in its query string.
func (c *Client) do(ctx context.Context, path, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s failed", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.log.Warn("TMDB returned an error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 256)),
		)
		return nil, fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}
	return body, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
