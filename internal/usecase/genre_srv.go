package usecase

import (
	"context"
	"fmt"

	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/data/repository"
	"movie-ranker/internal/dto/response"

	"go.uber.org/zap"
)

type GenreService interface {
	// List returns the stored genre table, seeding it from TMDB when empty.
	List(ctx context.Context) ([]response.GenreResponse, error)
}

type genreService struct {
	genres repository.GenreRepository
	meta   MetadataClient
	log    *zap.Logger
}

func NewGenreService(genres repository.GenreRepository, meta MetadataClient, log *zap.Logger) GenreService {
	return &genreService{
		genres: genres,
		meta:   meta,
		log:    log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) List(ctx context.Context) ([]response.GenreResponse, error) {
	stored, err := s.genres.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	if len(stored) > 0 {
		return response.GenresToResponse(stored), nil
	}

	fetched, err := s.meta.GetGenres(ctx)
	if err != nil {
		s.log.Error("Failed to sync genres from TMDB", zap.Error(err))
		return nil, upstreamError(err)
	}

	genres := make([]*entity.Genre, len(fetched))
	for i, g := range fetched {
		genres[i] = &entity.Genre{ID: g.ID, Name: g.Name}
	}

	if err := s.genres.UpsertBatch(ctx, genres); err != nil {
		// Serve what TMDB returned; the next call retries the write.
		s.log.Warn("Failed to store genres", zap.Error(err))
	} else {
		s.log.Info("Genres synced from TMDB", zap.Int("count", len(genres)))
	}

	return response.GenresToResponse(genres), nil
}
