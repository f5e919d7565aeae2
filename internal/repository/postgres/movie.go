package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type movieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, m *domain.Movie) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	query := `INSERT INTO movies (id, title, genre_id, genre_name, number_in_stock, daily_rental_rate)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := exec(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.Title, m.Genre.ID, m.Genre.Name, m.NumberInStock, m.DailyRentalRate)
	return err
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	m := &domain.Movie{}
	query := `SELECT id, title, genre_id, genre_name, number_in_stock, daily_rental_rate
	          FROM movies WHERE id = $1`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("movie with this ID was not found")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT id, title, genre_id, genre_name, number_in_stock, daily_rental_rate
	          FROM movies ORDER BY title`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *movieRepository) Update(ctx context.Context, m *domain.Movie) error {
	query := `UPDATE movies SET title=$1, genre_id=$2, genre_name=$3, number_in_stock=$4, daily_rental_rate=$5
	          WHERE id=$6`
	res, err := exec(ctx, r.db).ExecContext(ctx, query,
		m.Title, m.Genre.ID, m.Genre.Name, m.NumberInStock, m.DailyRentalRate, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("movie with this ID was not found")
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE id = $1`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("movie with this ID was not found")
	}
	return nil
}

// DecrementStock guards against negative stock in the statement itself so a
// concurrent rental on the last copy loses cleanly instead of oversubscribing.
func (r *movieRepository) DecrementStock(ctx context.Context, id string) error {
	query := `UPDATE movies SET number_in_stock = number_in_stock - 1
	          WHERE id = $1 AND number_in_stock > 0`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError("movie not available")
	}
	return nil
}

func (r *movieRepository) IncrementStock(ctx context.Context, id string) error {
	query := `UPDATE movies SET number_in_stock = number_in_stock + 1 WHERE id = $1`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("movie with this ID was not found")
	}
	return nil
}
