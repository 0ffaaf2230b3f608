package repository

import (
	"movie-ranker/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Library LibraryRepository
	Genre   GenreRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Library: NewLibraryRepository(db, log),
		Genre:   NewGenreRepository(db, log),
	}
}
