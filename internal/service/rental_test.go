package service_test

import (
	"context"
	"testing"
	"time"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRentalFixture() (*MockRentalRepo, *MockMovieRepo, *MockCustomerRepo, service.RentalService) {
	rentalRepo := new(MockRentalRepo)
	movieRepo := new(MockMovieRepo)
	customerRepo := new(MockCustomerRepo)
	svc := service.NewRentalService(rentalRepo, movieRepo, customerRepo, &fakeTxManager{})
	return rentalRepo, movieRepo, customerRepo, svc
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	customer := &domain.Customer{ID: "cust-1", Name: "Jamie Smith", Phone: "555-0100"}
	movie := &domain.Movie{
		ID:              "movie-1",
		Title:           "Heat",
		NumberInStock:   3,
		DailyRentalRate: 2,
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, movieRepo, customerRepo, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "cust-1").Return(customer, nil)
		movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)
		movieRepo.On("DecrementStock", ctx, "movie-1").Return(nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		res, err := svc.CreateRental(ctx, "cust-1", "movie-1")
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, "cust-1", res.Customer.ID)
		assert.Equal(t, "Jamie Smith", res.Customer.Name)
		assert.Equal(t, "movie-1", res.Movie.ID)
		assert.Equal(t, 2.0, res.Movie.DailyRentalRate)
		assert.False(t, res.DateOut.IsZero())
		assert.Nil(t, res.DateReturned)
		assert.Nil(t, res.RentalFee)
		movieRepo.AssertCalled(t, "DecrementStock", ctx, "movie-1")
	})

	t.Run("Missing customer id", func(t *testing.T) {
		rentalRepo, _, customerRepo, svc := newRentalFixture()

		res, err := svc.CreateRental(ctx, "", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))
		customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid customer", func(t *testing.T) {
		_, _, customerRepo, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "nope").Return(nil, domain.NewNotFoundError("customer with this ID was not found"))

		res, err := svc.CreateRental(ctx, "nope", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))
		assert.Contains(t, err.Error(), "invalid customer")
	})

	t.Run("Invalid movie", func(t *testing.T) {
		_, movieRepo, customerRepo, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "cust-1").Return(customer, nil)
		movieRepo.On("GetByID", ctx, "nope").Return(nil, domain.NewNotFoundError("movie with this ID was not found"))

		res, err := svc.CreateRental(ctx, "cust-1", "nope")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))
		assert.Contains(t, err.Error(), "invalid movie")
	})

	t.Run("Movie out of stock", func(t *testing.T) {
		rentalRepo, movieRepo, customerRepo, svc := newRentalFixture()
		empty := &domain.Movie{ID: "movie-1", Title: "Heat", NumberInStock: 0, DailyRentalRate: 2}
		customerRepo.On("GetByID", ctx, "cust-1").Return(customer, nil)
		movieRepo.On("GetByID", ctx, "movie-1").Return(empty, nil)

		res, err := svc.CreateRental(ctx, "cust-1", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindConflict, domain.KindOf(err))
		assert.Contains(t, err.Error(), "movie not available")
		movieRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Stock race lost inside transaction", func(t *testing.T) {
		rentalRepo, movieRepo, customerRepo, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, "cust-1").Return(customer, nil)
		movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)
		movieRepo.On("DecrementStock", ctx, "movie-1").Return(domain.NewConflictError("movie not available"))

		res, err := svc.CreateRental(ctx, "cust-1", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindConflict, domain.KindOf(err))
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRentalService_GetRental(t *testing.T) {
	ctx := context.Background()
	rentalRepo, _, _, svc := newRentalFixture()
	rentalRepo.On("GetByID", ctx, "rental-1").Return(&domain.Rental{
		ID:      "rental-1",
		DateOut: time.Now(),
	}, nil)

	rt, err := svc.GetRental(ctx, "rental-1")
	assert.NoError(t, err)
	assert.Equal(t, "rental-1", rt.ID)
}

func TestRentalService_ProcessReturn(t *testing.T) {
	ctx := context.Background()

	openRental := func(daysAgo int) *domain.Rental {
		return &domain.Rental{
			ID: "rental-1",
			Customer: domain.CustomerSnapshot{
				ID:    "cust-1",
				Name:  "Jamie Smith",
				Phone: "555-0100",
			},
			Movie: domain.MovieSnapshot{
				ID:              "movie-1",
				Title:           "Heat",
				DailyRentalRate: 2,
			},
			DateOut: time.Now().AddDate(0, 0, -daysAgo),
		}
	}

	t.Run("Missing ids rejected before any lookup", func(t *testing.T) {
		rentalRepo, movieRepo, _, svc := newRentalFixture()

		res, err := svc.ProcessReturn(ctx, "", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))

		res, err = svc.ProcessReturn(ctx, "cust-1", "")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))

		rentalRepo.AssertNotCalled(t, "FindOpenByCustomerAndMovie", mock.Anything, mock.Anything, mock.Anything)
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything)
	})

	t.Run("Success with seven day fee", func(t *testing.T) {
		rentalRepo, movieRepo, _, svc := newRentalFixture()
		rentalRepo.On("FindOpenByCustomerAndMovie", ctx, "cust-1", "movie-1").Return(openRental(7), nil)
		rentalRepo.On("Close", ctx, "rental-1", mock.AnythingOfType("time.Time"), 14.0).Return(nil)
		movieRepo.On("IncrementStock", ctx, "movie-1").Return(nil)

		res, err := svc.ProcessReturn(ctx, "cust-1", "movie-1")
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotNil(t, res.DateReturned)
		assert.NotNil(t, res.RentalFee)
		assert.Equal(t, 14.0, *res.RentalFee)
	})

	t.Run("Same day return has zero fee", func(t *testing.T) {
		rentalRepo, movieRepo, _, svc := newRentalFixture()
		rentalRepo.On("FindOpenByCustomerAndMovie", ctx, "cust-1", "movie-1").Return(openRental(0), nil)
		rentalRepo.On("Close", ctx, "rental-1", mock.AnythingOfType("time.Time"), 0.0).Return(nil)
		movieRepo.On("IncrementStock", ctx, "movie-1").Return(nil)

		res, err := svc.ProcessReturn(ctx, "cust-1", "movie-1")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, *res.RentalFee)
	})

	t.Run("No rental for pair", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("FindOpenByCustomerAndMovie", ctx, "cust-1", "movie-1").
			Return(nil, domain.NewNotFoundError("no open rental found for this customer and movie"))
		rentalRepo.On("FindByCustomerAndMovie", ctx, "cust-1", "movie-1").
			Return(nil, domain.NewNotFoundError("no rental found for this customer and movie"))

		res, err := svc.ProcessReturn(ctx, "cust-1", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindNotFound, domain.KindOf(err))
	})

	t.Run("Rental already processed", func(t *testing.T) {
		rentalRepo, movieRepo, _, svc := newRentalFixture()
		returned := time.Now().Add(-time.Hour)
		fee := 4.0
		closed := openRental(2)
		closed.DateReturned = &returned
		closed.RentalFee = &fee

		rentalRepo.On("FindOpenByCustomerAndMovie", ctx, "cust-1", "movie-1").
			Return(nil, domain.NewNotFoundError("no open rental found for this customer and movie"))
		rentalRepo.On("FindByCustomerAndMovie", ctx, "cust-1", "movie-1").Return(closed, nil)

		res, err := svc.ProcessReturn(ctx, "cust-1", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindConflict, domain.KindOf(err))
		assert.Contains(t, err.Error(), "already processed")
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent return loses conditional close", func(t *testing.T) {
		rentalRepo, movieRepo, _, svc := newRentalFixture()
		rentalRepo.On("FindOpenByCustomerAndMovie", ctx, "cust-1", "movie-1").Return(openRental(3), nil)
		rentalRepo.On("Close", ctx, "rental-1", mock.AnythingOfType("time.Time"), 6.0).
			Return(domain.NewConflictError("rental already processed"))

		res, err := svc.ProcessReturn(ctx, "cust-1", "movie-1")
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.ErrKindConflict, domain.KindOf(err))
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything)
	})
}
