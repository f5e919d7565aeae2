package service

import (
	"context"
	"strings"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"
)

type movieService struct {
	movieRepo  repository.MovieRepository
	genreRepo  repository.GenreRepository
	rentalRepo repository.RentalRepository
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	rentalRepo repository.RentalRepository,
) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		genreRepo:  genreRepo,
		rentalRepo: rentalRepo,
	}
}

func validateMovie(title string, numberInStock int32, dailyRentalRate float64) error {
	title = strings.TrimSpace(title)
	if len(title) < 2 || len(title) > 255 {
		return domain.NewValidationError("title must be between 2 and 255 characters")
	}
	if numberInStock < 0 {
		return domain.NewValidationError("numberInStock must not be negative")
	}
	if dailyRentalRate <= 0 {
		return domain.NewValidationError("dailyRentalRate must be positive")
	}
	return nil
}

// genreSnapshot resolves genreID to a denormalized snapshot, mapping an
// unknown genre to the "invalid genre" validation rejection.
func (s *movieService) genreSnapshot(ctx context.Context, genreID string) (*domain.GenreSnapshot, error) {
	if genreID == "" {
		return nil, domain.NewValidationError("genreId is required")
	}
	genre, err := s.genreRepo.GetByID(ctx, genreID)
	if err != nil {
		if domain.KindOf(err) == domain.ErrKindNotFound {
			return nil, domain.NewValidationError("invalid genre")
		}
		return nil, err
	}
	return &domain.GenreSnapshot{ID: genre.ID, Name: genre.Name}, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *movieService) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

func (s *movieService) CreateMovie(ctx context.Context, title, genreID string, numberInStock int32, dailyRentalRate float64) (*domain.Movie, error) {
	if err := validateMovie(title, numberInStock, dailyRentalRate); err != nil {
		return nil, err
	}
	snapshot, err := s.genreSnapshot(ctx, genreID)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title:           title,
		Genre:           *snapshot,
		NumberInStock:   numberInStock,
		DailyRentalRate: dailyRentalRate,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id, title, genreID string, numberInStock int32, dailyRentalRate float64) (*domain.Movie, error) {
	if err := validateMovie(title, numberInStock, dailyRentalRate); err != nil {
		return nil, err
	}
	snapshot, err := s.genreSnapshot(ctx, genreID)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		ID:              id,
		Title:           title,
		Genre:           *snapshot,
		NumberInStock:   numberInStock,
		DailyRentalRate: dailyRentalRate,
	}
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie refuses to remove a movie that an open rental still references.
func (s *movieService) DeleteMovie(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	open, err := s.rentalRepo.CountOpenByMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, domain.NewConflictError("movie has open rentals and cannot be deleted")
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return movie, nil
}
