package usecase

import (
	"context"
	"fmt"

	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/dto/response"
	"movie-ranker/internal/engine"
	"movie-ranker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RankingService interface {
	TopRated(ctx context.Context, userID uuid.UUID, req *request.RankingFilterRequest) ([]response.MovieResponse, error)
	Watchlist(ctx context.Context, userID uuid.UUID, req *request.RankingFilterRequest) ([]response.MovieResponse, error)
}

type rankingService struct {
	library repository.LibraryRepository
	engine  *engine.Engine
	log     *zap.Logger
}

func NewRankingService(library repository.LibraryRepository, eng *engine.Engine, log *zap.Logger) RankingService {
	return &rankingService{
		library: library,
		engine:  eng,
		log:     log.With(zap.String("service", "ranking")),
	}
}

func (s *rankingService) load(ctx context.Context, userID uuid.UUID, collection entity.Collection, req *request.RankingFilterRequest) ([]engine.Movie, engine.Filters, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, engine.Filters{}, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	rows, err := s.library.FindByCollection(ctx, userID, collection)
	if err != nil {
		return nil, engine.Filters{}, fmt.Errorf("rank %s: %w", collection, err)
	}
	return entity.ToMovies(rows), req.ToFilters(), nil
}

func (s *rankingService) TopRated(ctx context.Context, userID uuid.UUID, req *request.RankingFilterRequest) ([]response.MovieResponse, error) {
	seen, filters, err := s.load(ctx, userID, entity.CollectionSeen, req)
	if err != nil {
		return nil, err
	}
	return response.MoviesToResponse(s.engine.TopRated(seen, filters)), nil
}

func (s *rankingService) Watchlist(ctx context.Context, userID uuid.UUID, req *request.RankingFilterRequest) ([]response.MovieResponse, error) {
	unseen, filters, err := s.load(ctx, userID, entity.CollectionWatchlist, req)
	if err != nil {
		return nil, err
	}
	return response.MoviesToResponse(s.engine.Watchlist(unseen, filters)), nil
}
