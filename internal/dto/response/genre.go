package response

import (
	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/engine"
)

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Helper converter
func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	return out
}

// GenreNames indexes genres by id.
func GenreNames(genres []GenreResponse) map[int]string {
	out := make(map[int]string, len(genres))
	for _, g := range genres {
		out[g.ID] = g.Name
	}
	return out
}

type ProviderResponse struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	Key          string `json:"key"`
	LogoURL      string `json:"logo_url,omitempty"`
}

func ProvidersToResponse(providers []engine.Provider) []ProviderResponse {
	out := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		out[i] = ProviderResponse{
			ProviderID:   p.ProviderID,
			ProviderName: p.ProviderName,
			Key:          engine.NormalizeProvider(p.ProviderName),
			LogoURL:      engine.LogoURL(p.LogoPath),
		}
	}
	return out
}
