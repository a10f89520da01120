package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"teamspace/internal/server/models"
)

// UserRepository is the persistence surface the handlers depend on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

func (r *Users) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (email, name, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT email, name, password_hash, created_at FROM users
	          WHERE email = $1`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// isUniqueViolation matches the Postgres unique_violation SQLSTATE without
// depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
