package postgres

import (
	"database/sql"

	"tvpss-crew-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CrewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		CrewRepository: NewCrewRepository(db),
	}
}
