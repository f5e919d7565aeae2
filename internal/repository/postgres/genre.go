package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type genreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) repository.GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *domain.Genre) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	query := `INSERT INTO genres (id, name) VALUES ($1, $2)`
	_, err := exec(ctx, r.db).ExecContext(ctx, query, g.ID, g.Name)
	return err
}

func (r *genreRepository) GetByID(ctx context.Context, id string) (*domain.Genre, error) {
	g := &domain.Genre{}
	query := `SELECT id, name FROM genres WHERE id = $1`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("genre with this ID was not found")
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *genreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY name`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Update(ctx context.Context, g *domain.Genre) error {
	query := `UPDATE genres SET name = $1 WHERE id = $2`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, g.Name, g.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("genre with this ID was not found")
	}
	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM genres WHERE id = $1`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("genre with this ID was not found")
	}
	return nil
}
