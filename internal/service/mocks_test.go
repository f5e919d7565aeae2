package service_test

import (
	"context"
	"time"

	"movie-rental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGenreRepo
type MockGenreRepo struct {
	mock.Mock
}

func (m *MockGenreRepo) Create(ctx context.Context, g *domain.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGenreRepo) GetByID(ctx context.Context, id string) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}
func (m *MockGenreRepo) List(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Genre), args.Error(1)
}
func (m *MockGenreRepo) Update(ctx context.Context, g *domain.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGenreRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMovieRepo
type MockMovieRepo struct {
	mock.Mock
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}
func (m *MockMovieRepo) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}
func (m *MockMovieRepo) List(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Movie), args.Error(1)
}
func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}
func (m *MockMovieRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMovieRepo) DecrementStock(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMovieRepo) IncrementStock(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindOpenByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Close(ctx context.Context, id string, returned time.Time, fee float64) error {
	args := m.Called(ctx, id, returned, fee)
	return args.Error(0)
}
func (m *MockRentalRepo) CountOpenByMovie(ctx context.Context, movieID string) (int32, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRentalRepo) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// fakeTxManager runs the callback inline, optionally failing before it.
type fakeTxManager struct {
	beginErr error
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx)
}
