package adaptor

import (
	"errors"
	"net/http"

	"movie-ranker/internal/engine"
	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Library        *LibraryHandler
	Recommendation *RecommendationHandler
	Ranking        *RankingHandler
	Catalog        *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Library:        NewLibraryHandler(service.Library, service.Rating, log),
		Recommendation: NewRecommendationHandler(service.Recommendation, log),
		Ranking:        NewRankingHandler(service.Ranking, log),
		Catalog:        NewCatalogHandler(service.Genre, service.Provider, log),
	}
}

// userIDParam reads {userID}, writing a 400 when it is not a UUID.
func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// movieIDParam reads {movieID}, writing a 400 when it is not a positive id.
func movieIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.ParsePositiveInt(chi.URLParam(r, "movieID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps usecase errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, engine.ErrInvalidRating):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, usecase.ErrAlreadyInLibrary):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, usecase.ErrAlreadyInLibrary.Error())

	case errors.Is(err, usecase.ErrUpstream):
		log.Error(operation+" failed - upstream",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, usecase.ErrUpstream.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
