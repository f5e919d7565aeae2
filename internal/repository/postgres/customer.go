package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO customers (id, name, phone, is_gold) VALUES ($1, $2, $3, $4)`
	_, err := exec(ctx, r.db).ExecContext(ctx, query, c.ID, c.Name, c.Phone, c.IsGold)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, phone, is_gold FROM customers WHERE id = $1`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("customer with this ID was not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, phone, is_gold FROM customers ORDER BY name`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone=$2, is_gold=$3 WHERE id=$4`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, c.Name, c.Phone, c.IsGold, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("customer with this ID was not found")
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	res, err := exec(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError("customer with this ID was not found")
	}
	return nil
}
