package usecase

import (
	"context"
	"errors"
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

type RatingService interface {
	// RateMovie validates the rating and stores it. A watchlist entry is
	// moved to Seen, a Seen entry is re-rated, and an unknown movie is added
	// to Seen from req.Movie.
	RateMovie(ctx context.Context, userID uuid.UUID, req *request.RateMovieRequest) (*response.MovieResponse, error)
}

type ratingService struct {
	library repository.LibraryRepository
	log     *zap.Logger
}

func NewRatingService(library repository.LibraryRepository, log *zap.Logger) RatingService {
	return &ratingService{
		library: library,
		log:     log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) RateMovie(ctx context.Context, userID uuid.UUID, req *request.RateMovieRequest) (*response.MovieResponse, error) {
	// The rating is checked first so an invalid value never reaches the store.
	rating, err := engine.ValidateRating(string(req.Rating))
	if err != nil {
		s.log.Warn("Rejected rating",
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", req.MovieID),
			zap.Error(err),
		)
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	elo := engine.ToElo(rating)

	row, err := s.library.PromoteToSeen(ctx, userID, req.MovieID, rating, elo)
	if err != nil {
		return nil, fmt.Errorf("rate movie: %w", err)
	}
	if row != nil {
		s.log.Info("Movie rated",
			zap.String("user_id", userID.String()),
			zap.Int("movie_id", req.MovieID),
			zap.Float64("rating", rating),
		)
		resp := response.LibraryMovieToResponse(row)
		return &resp, nil
	}

	if req.Movie == nil {
		return nil, fmt.Errorf("%w: movie %d is not in the library and no movie details were sent", ErrValidation, req.MovieID)
	}
	if req.Movie.MovieID != req.MovieID {
		return nil, fmt.Errorf("%w: movie.movie_id does not match movie_id", ErrValidation)
	}

	rated := engine.ApplyRating(req.Movie.ToMovie(), rating)
	row = entity.LibraryMovieFrom(userID, entity.CollectionSeen, rated)
	if err := s.library.Create(ctx, row); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent insert; the row exists now.
			return s.RateMovie(ctx, userID, &request.RateMovieRequest{MovieID: req.MovieID, Rating: req.Rating})
		}
		return nil, fmt.Errorf("rate new movie: %w", err)
	}

	s.log.Info("Movie rated and added to seen",
		zap.String("user_id", userID.String()),
		zap.Int("movie_id", req.MovieID),
		zap.Float64("rating", rating),
	)

	resp := response.LibraryMovieToResponse(row)
	return &resp, nil
}
