package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"movie-ranker/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(utils.TMDBConfig{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		RequestsPerSecond: 1000,
	}, zap.NewNop())
}

func TestGetGenres(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":99,"name":"Documentary"}]}`))
	})

	genres, err := c.GetGenres(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Genre{{ID: 28, Name: "Action"}, {ID: 99, Name: "Documentary"}}, genres)
}

func TestGetWatchProviders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/watch/providers", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 550,
			"results": {
				"US": {
					"link": "https://www.themoviedb.org/movie/550/watch",
					"flatrate": [{"provider_id": 8, "provider_name": "Netflix", "logo_path": "/n.jpg", "display_priority": 1}],
					"ads": [{"provider_id": 1796, "provider_name": "Netflix basic with Ads", "logo_path": "/na.jpg", "display_priority": 2}],
					"rent": [{"provider_id": 2, "provider_name": "Apple TV", "logo_path": "/a.jpg"}]
				}
			}
		}`))
	})

	got, err := c.GetWatchProviders(context.Background(), 550, "US")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 8, got[0].ProviderID)
	assert.Equal(t, "Netflix basic with Ads", got[1].ProviderName)

	none, err := c.GetWatchProviders(context.Background(), 550, "DE")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetWatchProviders(context.Background(), 1, "US")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBreakerOpensAndFailsFast(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := c.GetGenres(context.Background())
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnavailable))
	}

	_, err := c.GetGenres(context.Background())

	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, int32(5), calls.Load())
}

func TestTransportErrorsOmitAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := NewClient(utils.TMDBConfig{
		APIKey:            "SECRET123",
		BaseURL:           baseURL,
		RequestsPerSecond: 1000,
	}, zap.NewNop())

	_, err := c.GetGenres(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET123")
	assert.Contains(t, err.Error(), "/genre/movie/list")

	_, err = c.GetWatchProviders(context.Background(), 550, "US")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET123")
}
