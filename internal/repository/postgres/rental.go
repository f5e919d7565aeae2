package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, customer_name, customer_phone,
	movie_id, movie_title, movie_daily_rental_rate,
	date_out, date_returned, rental_fee`

func scanRental(row interface{ Scan(dest ...interface{}) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var returned sql.NullTime
	var fee sql.NullFloat64
	err := row.Scan(
		&rt.ID, &rt.Customer.ID, &rt.Customer.Name, &rt.Customer.Phone,
		&rt.Movie.ID, &rt.Movie.Title, &rt.Movie.DailyRentalRate,
		&rt.DateOut, &returned, &fee)
	if err != nil {
		return nil, err
	}
	if returned.Valid {
		rt.DateReturned = &returned.Time
	}
	if fee.Valid {
		rt.RentalFee = &fee.Float64
	}
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.DateOut.IsZero() {
		rt.DateOut = time.Now()
	}
	query := `INSERT INTO rentals (id, customer_id, customer_name, customer_phone,
	          movie_id, movie_title, movie_daily_rental_rate, date_out)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := exec(ctx, r.db).ExecContext(ctx, query,
		rt.ID, rt.Customer.ID, rt.Customer.Name, rt.Customer.Phone,
		rt.Movie.ID, rt.Movie.Title, rt.Movie.DailyRentalRate, rt.DateOut)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(exec(ctx, r.db).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rental with this ID was not found")
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY date_out DESC`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) FindOpenByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE customer_id = $1 AND movie_id = $2 AND date_returned IS NULL
	          ORDER BY date_out DESC LIMIT 1`
	rt, err := scanRental(exec(ctx, r.db).QueryRowContext(ctx, query, customerID, movieID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("no open rental found for this customer and movie")
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE customer_id = $1 AND movie_id = $2
	          ORDER BY date_out DESC LIMIT 1`
	rt, err := scanRental(exec(ctx, r.db).QueryRowContext(ctx, query, customerID, movieID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("no rental found for this customer and movie")
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Close is conditional on date_returned still being NULL. Two concurrent
// returns therefore resolve inside the store: one update wins, the other
// affects zero rows and reports a conflict.
func (r *rentalRepository) Close(ctx context.Context, id string, returned time.Time, fee float64) error {
	query := `UPDATE rentals SET date_returned = $1, rental_fee = $2
	          WHERE id = $3 AND date_returned IS NULL`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, returned, fee, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError("rental already processed")
	}
	return nil
}

func (r *rentalRepository) CountOpenByMovie(ctx context.Context, movieID string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE movie_id = $1 AND date_returned IS NULL`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, movieID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE date_returned IS NULL AND date_out < $1
	          ORDER BY date_out`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}
