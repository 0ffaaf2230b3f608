package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/data/tmdb"
	"movie-ranker/internal/engine"
	"movie-ranker/pkg/cache"

	"go.uber.org/zap"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyInLibrary = errors.New("movie already in library")
	ErrValidation       = errors.New("validation failed")
	ErrUpstream         = errors.New("metadata service unavailable")
)

// MetadataClient is the slice of the TMDB client the services need.
type MetadataClient interface {
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
	GetWatchProviders(ctx context.Context, movieID int, region string) ([]tmdb.WatchProvider, error)
}

type Service struct {
	Library        LibraryService
	Rating         RatingService
	Recommendation RecommendationService
	Ranking        RankingService
	Provider       ProviderService
	Genre          GenreService
}

func NewService(
	repo *repository.Repository,
	eng *engine.Engine,
	meta MetadataClient,
	c cache.Cache,
	log *zap.Logger,
) *Service {
	genre := NewGenreService(repo.Genre, meta, log)

	return &Service{
		Library:        NewLibraryService(repo.Library, log),
		Rating:         NewRatingService(repo.Library, log),
		Recommendation: NewRecommendationService(repo.Library, genre, eng, c, log),
		Ranking:        NewRankingService(repo.Library, eng, log),
		Provider:       NewProviderService(meta, c, log),
		Genre:          genre,
	}
}

// upstreamError classifies a metadata client failure.
func upstreamError(err error) error {
	if errors.Is(err, tmdb.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
