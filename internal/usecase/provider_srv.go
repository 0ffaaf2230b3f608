package usecase

import (
	"context"
	"fmt"
	"strings"

	"movie-ranker/internal/dto/request"
	"movie-ranker/internal/dto/response"
	"movie-ranker/internal/engine"
	"movie-ranker/pkg/cache"
	"movie-ranker/pkg/utils"

	"go.uber.org/zap"
)

type ProviderService interface {
	// GetMovieProviders returns the streaming services of a movie with one
	// entry per brand, ad-free tiers preferred.
	GetMovieProviders(ctx context.Context, req *request.ProvidersRequest) ([]response.ProviderResponse, error)
}

type providerService struct {
	meta  MetadataClient
	cache cache.Cache
	log   *zap.Logger
}

func NewProviderService(meta MetadataClient, c cache.Cache, log *zap.Logger) ProviderService {
	return &providerService{
		meta:  meta,
		cache: c,
		log:   log.With(zap.String("service", "provider")),
	}
}

func (s *providerService) GetMovieProviders(ctx context.Context, req *request.ProvidersRequest) ([]response.ProviderResponse, error) {
	req.Region = strings.ToUpper(req.Region)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	key := fmt.Sprintf("providers:%d:%s", req.MovieID, req.Region)
	var cached []response.ProviderResponse
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	offers, err := s.meta.GetWatchProviders(ctx, req.MovieID, req.Region)
	if err != nil {
		s.log.Error("Failed to fetch watch providers",
			zap.Int("movie_id", req.MovieID),
			zap.String("region", req.Region),
			zap.Error(err),
		)
		return nil, upstreamError(err)
	}

	raw := make([]engine.Provider, len(offers))
	for i, o := range offers {
		raw[i] = engine.Provider{
			ProviderID:   o.ProviderID,
			ProviderName: o.ProviderName,
			LogoPath:     o.LogoPath,
		}
	}

	out := response.ProvidersToResponse(engine.DedupeProviders(raw))

	if err := s.cache.Set(ctx, key, out); err != nil {
		s.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
