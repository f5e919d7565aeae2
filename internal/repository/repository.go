package repository

import (
	"context"
	"time"

	"movie-rental-backend/internal/domain"
)

// TxManager runs a function inside a single storage transaction. Every
// repository call made with the context it passes to fn joins that
// transaction; either all of them commit or none persist.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id string) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id string) error
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id string) error

	// DecrementStock subtracts one from number_in_stock, guarded so stock
	// never goes negative. Returns a conflict error when stock is exhausted.
	DecrementStock(ctx context.Context, id string) error
	IncrementStock(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)

	// FindOpenByCustomerAndMovie locates the open rental for the pair, i.e.
	// the one whose date_returned is still NULL.
	FindOpenByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	// FindByCustomerAndMovie locates the most recent rental for the pair,
	// open or closed.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error)

	// Close stamps date_returned and rental_fee on an open rental. The
	// update is conditional on the rental still being open, so of two
	// concurrent returns exactly one wins; the loser gets a conflict error.
	Close(ctx context.Context, id string, returned time.Time, fee float64) error

	CountOpenByMovie(ctx context.Context, movieID string) (int32, error)
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
