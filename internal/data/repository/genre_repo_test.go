package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-ranker/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenreFindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewGenreRepository(mock, zap.NewNop())
	stamp := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, name, updated_at FROM genres`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "updated_at"}).
			AddRow(28, "Action", stamp).
			AddRow(35, "Comedy", stamp))

	got, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Comedy", got[1].Name)
}

func TestGenreUpsertBatch(t *testing.T) {
	mock := newMock(t)
	repo := NewGenreRepository(mock, zap.NewNop())

	mock.ExpectExec(`(?s)INSERT INTO genres.*unnest\(\$1::int\[\], \$2::text\[\]\)`).
		WithArgs([]int{28, 99}, []string{"Action", "Documentary"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	err := repo.UpsertBatch(context.Background(), []*entity.Genre{{ID: 28, Name: "Action"}, {ID: 99, Name: "Documentary"}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreUpsertBatchEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewGenreRepository(mock, zap.NewNop())

	require.NoError(t, repo.UpsertBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreUpsertBatchError(t *testing.T) {
	mock := newMock(t)
	repo := NewGenreRepository(mock, zap.NewNop())

	mock.ExpectExec(`INSERT INTO genres`).WillReturnError(errors.New("read only transaction"))

	err := repo.UpsertBatch(context.Background(), []*entity.Genre{{ID: 28, Name: "Action"}})

	assert.Error(t, err)
}
