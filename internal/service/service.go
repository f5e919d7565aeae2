package service

import (
	"context"

	"movie-rental-backend/internal/domain"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	GetGenre(ctx context.Context, id string) (*domain.Genre, error)
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)
	UpdateGenre(ctx context.Context, id, name string) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id string) (*domain.Genre, error)
}

type MovieService interface {
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	CreateMovie(ctx context.Context, title, genreID string, numberInStock int32, dailyRentalRate float64) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, id, title, genreID string, numberInStock int32, dailyRentalRate float64) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, id string) (*domain.Movie, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, name, phone string, isGold bool) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id, name, phone string, isGold bool) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// RentalService is the rental workflow: creation reserves stock and records
// the rental as one atomic unit; return processing closes the rental,
// computes the fee, and restores stock as one atomic unit.
type RentalService interface {
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	CreateRental(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	ProcessReturn(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error) // user, token, error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
