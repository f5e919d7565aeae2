package postgres

import (
	"context"
	"database/sql"
	"errors"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, name, email, password_hash, is_admin) VALUES ($1, $2, $3, $4, $5)`
	_, err := exec(ctx, r.db).ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin)
	// Two concurrent registrations can both pass the service's email lookup;
	// the unique index on users.email decides the loser here.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.NewConflictError("user already registered")
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, is_admin FROM users WHERE id = $1`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user with this ID was not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, is_admin FROM users WHERE email = $1`
	err := exec(ctx, r.db).QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user with this email was not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, password_hash, is_admin FROM users ORDER BY name`
	rows, err := exec(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
