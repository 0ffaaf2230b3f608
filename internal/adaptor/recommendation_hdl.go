package adaptor

import (
	"net/http"

	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

type RecommendationHandler struct {
	service usecase.RecommendationService
	log     *zap.Logger
}

func NewRecommendationHandler(service usecase.RecommendationService, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		log:     log.With(zap.String("handler", "recommendation")),
	}
}

// GetRecommendations handles GET /api/users/{userID}/recommendations
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	recs, err := h.service.GetRecommendations(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get recommendations")
		return
	}

	utils.ResponseSuccess(w, "Recommendations retrieved successfully", recs)
}

// GetProfile handles GET /api/users/{userID}/profile
func (h *RecommendationHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}
