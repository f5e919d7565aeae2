package service

import (
	"context"
	"strings"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"
)

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func validateGenreName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return domain.NewValidationError("name must be between 2 and 50 characters")
	}
	return nil
}

func (s *genreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.List(ctx)
}

func (s *genreService) GetGenre(ctx context.Context, id string) (*domain.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	if err := validateGenreName(name); err != nil {
		return nil, err
	}
	genre := &domain.Genre{Name: name}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id, name string) (*domain.Genre, error) {
	if err := validateGenreName(name); err != nil {
		return nil, err
	}
	genre := &domain.Genre{ID: id, Name: name}
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id string) (*domain.Genre, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.genreRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return genre, nil
}
