package adaptor

import (
	"net/http"

	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/usecase"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

type LibraryHandler struct {
	library usecase.LibraryService
	rating  usecase.RatingService
	log     *zap.Logger
}

func NewLibraryHandler(library usecase.LibraryService, rating usecase.RatingService, log *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		library: library,
		rating:  rating,
		log:     log.With(zap.String("handler", "library")),
	}
}

// ListSeen handles GET /api/users/{userID}/seen
func (h *LibraryHandler) ListSeen(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	movies, err := h.library.ListSeen(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list seen")
		return
	}

	utils.ResponseSuccess(w, "Seen movies retrieved successfully", movies)
}

// AddToWatchlist handles POST /api/users/{userID}/watchlist
func (h *LibraryHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req request.MovieRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.library.AddToWatchlist(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to watchlist")
		return
	}

	utils.ResponseCreated(w, "Movie added to watchlist", movie)
}

// RateMovie handles POST /api/users/{userID}/ratings
func (h *LibraryHandler) RateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req request.RateMovieRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.rating.RateMovie(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate movie")
		return
	}

	utils.ResponseSuccess(w, "Movie rated successfully", movie)
}

// RemoveMovie handles DELETE /api/users/{userID}/library/{movieID}
func (h *LibraryHandler) RemoveMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	if err := h.library.RemoveMovie(r.Context(), userID, movieID); err != nil {
		handleServiceError(w, h.log, err, "remove movie")
		return
	}

	utils.ResponseSuccess(w, "Movie removed successfully", nil)
}

// SetProviders handles PUT /api/users/{userID}/library/{movieID}/providers
func (h *LibraryHandler) SetProviders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req request.SetProvidersRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.library.SetProviders(r.Context(), userID, movieID, &req); err != nil {
		handleServiceError(w, h.log, err, "set providers")
		return
	}

	utils.ResponseSuccess(w, "Providers updated successfully", nil)
}
