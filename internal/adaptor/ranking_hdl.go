package adaptor

import (
	"net/http"

	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

type RankingHandler struct {
	service usecase.RankingService
	log     *zap.Logger
}

func NewRankingHandler(service usecase.RankingService, log *zap.Logger) *RankingHandler {
	return &RankingHandler{
		service: service,
		log:     log.With(zap.String("handler", "ranking")),
	}
}

// GetTopRated handles GET /api/users/{userID}/top-rated
func (h *RankingHandler) GetTopRated(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	filters, ok := h.parseFilters(w, r)
	if !ok {
		return
	}

	movies, err := h.service.TopRated(r.Context(), userID, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get top rated")
		return
	}

	utils.ResponseSuccess(w, "Top rated movies retrieved successfully", movies)
}

// GetWatchlist handles GET /api/users/{userID}/watchlist
func (h *RankingHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	filters, ok := h.parseFilters(w, r)
	if !ok {
		return
	}

	movies, err := h.service.Watchlist(r.Context(), userID, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, "Watchlist retrieved successfully", movies)
}

// parseFilters reads ?genres=28,12&decades=1970s&services=8.
func (h *RankingHandler) parseFilters(w http.ResponseWriter, r *http.Request) (*request.RankingFilterRequest, bool) {
	query := r.URL.Query()

	genres, err := utils.ParseIntList(query.Get("genres"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid genres filter", map[string]string{"genres": err.Error()})
		return nil, false
	}
	services, err := utils.ParseIntList(query.Get("services"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid services filter", map[string]string{"services": err.Error()})
		return nil, false
	}

	return &request.RankingFilterRequest{
		GenreIDs:   genres,
		Decades:    utils.SplitList(query.Get("decades")),
		ServiceIDs: services,
	}, true
}
