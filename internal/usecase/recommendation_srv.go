package usecase

import (
	"context"
	"fmt"

	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/dto/response"
	"movie-ranker/internal/engine"
	"movie-ranker/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]response.RecommendationResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
}

type recommendationService struct {
	library repository.LibraryRepository
	genres  GenreService
	engine  *engine.Engine
	cache   cache.Cache
	log     *zap.Logger
}

func NewRecommendationService(library repository.LibraryRepository, genres GenreService, eng *engine.Engine, c cache.Cache, log *zap.Logger) RecommendationService {
	return &recommendationService{
		library: library,
		genres:  genres,
		engine:  eng,
		cache:   c,
		log:     log.With(zap.String("service", "recommendation")),
	}
}

// cacheKey scopes an entry to the library version, so any write to the
// user's collections makes older entries unreachable.
func (s *recommendationService) cacheKey(ctx context.Context, kind string, userID uuid.UUID) (string, error) {
	version, err := s.library.Version(ctx, userID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%s", kind, userID, version), nil
}

func (s *recommendationService) fromCache(ctx context.Context, key string, dest any) bool {
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (s *recommendationService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]response.RecommendationResponse, error) {
	key, err := s.cacheKey(ctx, "recs", userID)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}

	var cached []response.RecommendationResponse
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	seen, err := s.library.FindByCollection(ctx, userID, entity.CollectionSeen)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	unseen, err := s.library.FindByCollection(ctx, userID, entity.CollectionWatchlist)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}

	recs := s.engine.Recommend(entity.ToMovies(seen), entity.ToMovies(unseen))
	out := response.RecommendationsToResponse(recs)

	s.log.Info("Recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("seen", len(seen)),
		zap.Int("candidates", len(unseen)),
		zap.Int("returned", len(out)),
	)

	s.toCache(ctx, key, out)
	return out, nil
}

func (s *recommendationService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	key, err := s.cacheKey(ctx, "profile", userID)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	var cached response.ProfileResponse
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	seen, err := s.library.FindByCollection(ctx, userID, entity.CollectionSeen)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	genres, err := s.genres.List(ctx)
	if err != nil {
		// Names stay empty and the profile is not cached.
		s.log.Warn("Failed to load genre names", zap.Error(err))
		profile := s.engine.Profile(entity.ToMovies(seen), nil)
		out := response.ProfileToResponse(profile, len(seen))
		return &out, nil
	}

	profile := s.engine.Profile(entity.ToMovies(seen), response.GenreNames(genres))
	out := response.ProfileToResponse(profile, len(seen))

	s.toCache(ctx, key, out)
	return &out, nil
}
