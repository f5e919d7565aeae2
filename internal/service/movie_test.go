package service_test

import (
	"context"
	"testing"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMovieFixture() (*MockMovieRepo, *MockGenreRepo, *MockRentalRepo, service.MovieService) {
	movieRepo := new(MockMovieRepo)
	genreRepo := new(MockGenreRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewMovieService(movieRepo, genreRepo, rentalRepo)
	return movieRepo, genreRepo, rentalRepo, svc
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()
	genre := &domain.Genre{ID: "genre-1", Name: "Action"}

	t.Run("Success", func(t *testing.T) {
		movieRepo, genreRepo, _, svc := newMovieFixture()
		genreRepo.On("GetByID", ctx, "genre-1").Return(genre, nil)
		movieRepo.On("Create", ctx, mock.AnythingOfType("*domain.Movie")).Return(nil)

		movie, err := svc.CreateMovie(ctx, "Heat", "genre-1", 3, 2)
		assert.NoError(t, err)
		assert.Equal(t, "Heat", movie.Title)
		assert.Equal(t, "Action", movie.Genre.Name)
		assert.Equal(t, int32(3), movie.NumberInStock)
	})

	t.Run("Invalid genre", func(t *testing.T) {
		movieRepo, genreRepo, _, svc := newMovieFixture()
		genreRepo.On("GetByID", ctx, "nope").Return(nil, domain.NewNotFoundError("genre with this ID was not found"))

		movie, err := svc.CreateMovie(ctx, "Heat", "nope", 3, 2)
		assert.Error(t, err)
		assert.Nil(t, movie)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))
		assert.Contains(t, err.Error(), "invalid genre")
		movieRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects bad fields before touching the store", func(t *testing.T) {
		_, genreRepo, _, svc := newMovieFixture()

		_, err := svc.CreateMovie(ctx, "H", "genre-1", 3, 2)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))

		_, err = svc.CreateMovie(ctx, "Heat", "genre-1", -1, 2)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))

		_, err = svc.CreateMovie(ctx, "Heat", "genre-1", 3, 0)
		assert.Equal(t, domain.ErrKindValidation, domain.KindOf(err))

		genreRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	movie := &domain.Movie{ID: "movie-1", Title: "Heat", NumberInStock: 3, DailyRentalRate: 2}

	t.Run("Success", func(t *testing.T) {
		movieRepo, _, rentalRepo, svc := newMovieFixture()
		movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)
		rentalRepo.On("CountOpenByMovie", ctx, "movie-1").Return(int32(0), nil)
		movieRepo.On("Delete", ctx, "movie-1").Return(nil)

		deleted, err := svc.DeleteMovie(ctx, "movie-1")
		assert.NoError(t, err)
		assert.Equal(t, "Heat", deleted.Title)
	})

	t.Run("Open rentals block deletion", func(t *testing.T) {
		movieRepo, _, rentalRepo, svc := newMovieFixture()
		movieRepo.On("GetByID", ctx, "movie-1").Return(movie, nil)
		rentalRepo.On("CountOpenByMovie", ctx, "movie-1").Return(int32(2), nil)

		deleted, err := svc.DeleteMovie(ctx, "movie-1")
		assert.Error(t, err)
		assert.Nil(t, deleted)
		assert.Equal(t, domain.ErrKindConflict, domain.KindOf(err))
		movieRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown movie", func(t *testing.T) {
		movieRepo, _, _, svc := newMovieFixture()
		movieRepo.On("GetByID", ctx, "movie-9").Return(nil, domain.NewNotFoundError("movie with this ID was not found"))

		deleted, err := svc.DeleteMovie(ctx, "movie-9")
		assert.Error(t, err)
		assert.Nil(t, deleted)
		assert.Equal(t, domain.ErrKindNotFound, domain.KindOf(err))
	})
}
