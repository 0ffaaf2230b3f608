package wire

import (
	"net/http"

	"movie-ranker/internal/adaptor"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/engine"
	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/cache"
	"movie-ranker/pkg/middleware"
	"movie-ranker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Deps are the long-lived collaborators built in main.
type Deps struct {
	Repo     *repository.Repository
	Engine   *engine.Engine
	Metadata usecase.MetadataClient
	Cache    cache.Cache
}

// Wiring builds services, handlers and routes.
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.Engine, deps.Metadata, deps.Cache, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.App.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.App.RateLimitRequests))

		wireCatalog(r, handler.Catalog)
		wireLibrary(r, handler.Library)
		wireRecommendation(r, handler.Recommendation)
		wireRanking(r, handler.Ranking)
	})

	return r
}
