package service

import (
	"context"
	"time"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/logger"
	"movie-rental-backend/internal/repository"
	"movie-rental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	movieRepo    repository.MovieRepository
	customerRepo repository.CustomerRepository
	txMgr        repository.TxManager
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	movieRepo repository.MovieRepository,
	customerRepo repository.CustomerRepository,
	txMgr repository.TxManager,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		movieRepo:    movieRepo,
		customerRepo: customerRepo,
		txMgr:        txMgr,
		now:          time.Now,
	}
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// CreateRental snapshots the customer and movie, then inserts the rental and
// decrements stock inside one transaction. The stock decrement is guarded in
// the store, so the zero-stock check here is only a fast path.
func (s *rentalService) CreateRental(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customerId is required")
	}
	if movieID == "" {
		return nil, domain.NewValidationError("movieId is required")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if domain.KindOf(err) == domain.ErrKindNotFound {
			return nil, domain.NewValidationError("invalid customer")
		}
		return nil, err
	}

	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if domain.KindOf(err) == domain.ErrKindNotFound {
			return nil, domain.NewValidationError("invalid movie")
		}
		return nil, err
	}
	if movie.NumberInStock == 0 {
		return nil, domain.NewConflictError("movie not available")
	}

	rental := &domain.Rental{
		Customer: domain.CustomerSnapshot{
			ID:    customer.ID,
			Name:  customer.Name,
			Phone: customer.Phone,
		},
		Movie: domain.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut: s.now(),
	}

	err = s.txMgr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.movieRepo.DecrementStock(ctx, movie.ID); err != nil {
			return err
		}
		return s.rentalRepo.Create(ctx, rental)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rental created", "rental_id", rental.ID, "customer_id", customer.ID, "movie_id", movie.ID)
	return rental, nil
}

// ProcessReturn closes the open rental for the pair and restores stock inside
// one transaction. The close is conditional on the rental still being open, so
// of two concurrent returns exactly one succeeds.
func (s *rentalService) ProcessReturn(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customerId is required")
	}
	if movieID == "" {
		return nil, domain.NewValidationError("movieId is required")
	}

	rental, err := s.rentalRepo.FindOpenByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		if domain.KindOf(err) == domain.ErrKindNotFound {
			// Distinguish "pair never rented" from "pair rented but closed".
			if prev, prevErr := s.rentalRepo.FindByCustomerAndMovie(ctx, customerID, movieID); prevErr == nil && !prev.IsOpen() {
				return nil, domain.NewConflictError("rental already processed")
			}
			return nil, domain.NewNotFoundError("no open rental found for this customer and movie")
		}
		return nil, err
	}

	returned := s.now()
	fee := utils.RentalFee(rental.DateOut, returned, rental.Movie.DailyRentalRate)

	err = s.txMgr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.rentalRepo.Close(ctx, rental.ID, returned, fee); err != nil {
			return err
		}
		return s.movieRepo.IncrementStock(ctx, rental.Movie.ID)
	})
	if err != nil {
		return nil, err
	}

	rental.DateReturned = &returned
	rental.RentalFee = &fee
	logger.Info("rental returned", "rental_id", rental.ID, "rental_fee", fee)
	return rental, nil
}
