package middleware

import (
	"net/http"
	"time"

	"movie-ranker/pkg/utils"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// CORS allows the configured browser origins.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}

// RateLimit limits each client IP to requests per minute. A non-positive
// limit disables it.
func RateLimit(requests int) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requests,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseJSON(w, http.StatusTooManyRequests, false, "Too many requests", nil, nil)
		}),
	)
}
