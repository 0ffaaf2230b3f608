package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/dto/response"
	"movie-ranker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LibraryService interface {
	ListSeen(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error)
	AddToWatchlist(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	RemoveMovie(ctx context.Context, userID uuid.UUID, movieID int) error
	SetProviders(ctx context.Context, userID uuid.UUID, movieID int, req *request.SetProvidersRequest) error
}

type libraryService struct {
	library repository.LibraryRepository
	log     *zap.Logger
}

func NewLibraryService(library repository.LibraryRepository, log *zap.Logger) LibraryService {
	return &libraryService{
		library: library,
		log:     log.With(zap.String("service", "library")),
	}
}

func (s *libraryService) ListSeen(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	rows, err := s.library.FindByCollection(ctx, userID, entity.CollectionSeen)
	if err != nil {
		return nil, fmt.Errorf("list seen: %w", err)
	}

	out := make([]response.MovieResponse, len(rows))
	for i, row := range rows {
		out[i] = response.LibraryMovieToResponse(row)
	}
	return out, nil
}

func (s *libraryService) AddToWatchlist(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to watchlist validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.library.FindByID(ctx, userID, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check library: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: movie %d is in %s", ErrAlreadyInLibrary, req.MovieID, existing.Collection)
	}

	row := entity.LibraryMovieFrom(userID, entity.CollectionWatchlist, req.ToMovie())
	if err := s.library.Create(ctx, row); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: movie %d", ErrAlreadyInLibrary, req.MovieID)
		}
		return nil, fmt.Errorf("add to watchlist: %w", err)
	}

	s.log.Info("Movie added to watchlist",
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", req.MovieID),
	)

	resp := response.LibraryMovieToResponse(row)
	return &resp, nil
}

func (s *libraryService) RemoveMovie(ctx context.Context, userID uuid.UUID, movieID int) error {
	deleted, err := s.library.Delete(ctx, userID, movieID)
	if err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	s.log.Info("Movie removed from library",
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", movieID),
	)
	return nil
}

func (s *libraryService) SetProviders(ctx context.Context, userID uuid.UUID, movieID int, req *request.SetProvidersRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	updated, err := s.library.UpdateProviders(ctx, userID, movieID, req.ProviderIDs)
	if err != nil {
		return fmt.Errorf("set providers: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}
	return nil
}
