package adaptor

import (
	"net/http"

	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/dto/response"
	"movie-ranker/internal/engine"
	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

const defaultRegion = "US"

// CatalogHandler serves reference data that is not tied to a user.
type CatalogHandler struct {
	genres    usecase.GenreService
	providers usecase.ProviderService
	log       *zap.Logger
}

func NewCatalogHandler(genres usecase.GenreService, providers usecase.ProviderService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		genres:    genres,
		providers: providers,
		log:       log.With(zap.String("handler", "catalog")),
	}
}

// GetGenres handles GET /api/genres
func (h *CatalogHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetDecades handles GET /api/decades
func (h *CatalogHandler) GetDecades(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Decades retrieved successfully", response.DecadesToResponse(engine.DecadeBuckets))
}

// GetProviders handles GET /api/movies/{movieID}/providers?region=US
func (h *CatalogHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	region := r.URL.Query().Get("region")
	if region == "" {
		region = defaultRegion
	}

	providers, err := h.providers.GetMovieProviders(r.Context(), &request.ProvidersRequest{
		MovieID: movieID,
		Region:  region,
	})
	if err != nil {
		handleServiceError(w, h.log, err, "get providers")
		return
	}

	utils.ResponseSuccess(w, "Providers retrieved successfully", providers)
}
