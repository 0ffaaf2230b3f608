package wire

import (
	"movie-ranker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/api/genres", catalogHandler.GetGenres)
	r.Get("/api/decades", catalogHandler.GetDecades)

	// ?region=US, defaults to US
	r.Get("/api/movies/{movieID}/providers", catalogHandler.GetProviders)
}

func wireLibrary(r chi.Router, libraryHandler *adaptor.LibraryHandler) {
	r.Get("/api/users/{userID}/seen", libraryHandler.ListSeen)
	r.Post("/api/users/{userID}/watchlist", libraryHandler.AddToWatchlist)
	r.Post("/api/users/{userID}/ratings", libraryHandler.RateMovie)
	r.Delete("/api/users/{userID}/library/{movieID}", libraryHandler.RemoveMovie)
	r.Put("/api/users/{userID}/library/{movieID}/providers", libraryHandler.SetProviders)
}

func wireRecommendation(r chi.Router, recommendationHandler *adaptor.RecommendationHandler) {
	r.Get("/api/users/{userID}/recommendations", recommendationHandler.GetRecommendations)
	r.Get("/api/users/{userID}/profile", recommendationHandler.GetProfile)
}

func wireRanking(r chi.Router, rankingHandler *adaptor.RankingHandler) {
	// ?genres=28,12&decades=1970s,1980s&services=8
	r.Get("/api/users/{userID}/top-rated", rankingHandler.GetTopRated)
	r.Get("/api/users/{userID}/watchlist", rankingHandler.GetWatchlist)
}
