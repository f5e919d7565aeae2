package postgres

import (
	"database/sql"

	"movie-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TxManager
	repository.GenreRepository
	repository.MovieRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		TxManager:          NewTxManager(db),
		GenreRepository:    NewGenreRepository(db),
		MovieRepository:    NewMovieRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
		UserRepository:     NewUserRepository(db),
	}
}
