package usecase

import (
	"context"

	"movie-ranker/internal/data/entity"
	"movie-ranker/internal/data/tmdb"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockLibraryRepo struct {
	mock.Mock
}

func (m *mockLibraryRepo) FindByCollection(ctx context.Context, userID uuid.UUID, collection entity.Collection) ([]*entity.LibraryMovie, error) {
	args := m.Called(ctx, userID, collection)
	rows, _ := args.Get(0).([]*entity.LibraryMovie)
	return rows, args.Error(1)
}

func (m *mockLibraryRepo) FindByID(ctx context.Context, userID uuid.UUID, movieID int) (*entity.LibraryMovie, error) {
	args := m.Called(ctx, userID, movieID)
	row, _ := args.Get(0).(*entity.LibraryMovie)
	return row, args.Error(1)
}

func (m *mockLibraryRepo) Create(ctx context.Context, movie *entity.LibraryMovie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockLibraryRepo) PromoteToSeen(ctx context.Context, userID uuid.UUID, movieID int, userRating, eloRating float64) (*entity.LibraryMovie, error) {
	args := m.Called(ctx, userID, movieID, userRating, eloRating)
	row, _ := args.Get(0).(*entity.LibraryMovie)
	return row, args.Error(1)
}

func (m *mockLibraryRepo) UpdateProviders(ctx context.Context, userID uuid.UUID, movieID int, providerIDs []int) (bool, error) {
	args := m.Called(ctx, userID, movieID, providerIDs)
	return args.Bool(0), args.Error(1)
}

func (m *mockLibraryRepo) Delete(ctx context.Context, userID uuid.UUID, movieID int) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLibraryRepo) Version(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type mockGenreRepo struct {
	mock.Mock
}

func (m *mockGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*entity.Genre)
	return rows, args.Error(1)
}

func (m *mockGenreRepo) UpsertBatch(ctx context.Context, genres []*entity.Genre) error {
	return m.Called(ctx, genres).Error(0)
}

type mockMeta struct {
	mock.Mock
}

func (m *mockMeta) GetGenres(ctx context.Context) ([]tmdb.Genre, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]tmdb.Genre)
	return genres, args.Error(1)
}

func (m *mockMeta) GetWatchProviders(ctx context.Context, movieID int, region string) ([]tmdb.WatchProvider, error) {
	args := m.Called(ctx, movieID, region)
	providers, _ := args.Get(0).([]tmdb.WatchProvider)
	return providers, args.Error(1)
}

// memCache round-trips values through JSON like the Redis cache does.
type memCache struct {
	values map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memCache) Close() error { return nil }
