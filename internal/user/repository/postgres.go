package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = "id, email, name, password_hash, onboarded, status, created_at, updated_at"

// GetByID returns the user for id, or nil if not found.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// GetByEmail returns the user for email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

// Create persists the user. The user must have ID set and be valid.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, password_hash, onboarded, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		u.ID, u.Email, u.Name, u.PasswordHash, u.Onboarded, u.Status, u.CreatedAt, u.UpdatedAt)
	return err
}

// Update updates mutable user fields.
func (r *PostgresRepository) Update(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET email = $2, name = $3, onboarded = $4, status = $5, updated_at = $6 WHERE id = $1",
		u.ID, u.Email, u.Name, u.Onboarded, u.Status, u.UpdatedAt)
	return err
}

// SetOnboarded marks the user as onboarded. No-op if already set.
func (r *PostgresRepository) SetOnboarded(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET onboarded = TRUE, updated_at = NOW() WHERE id = $1 AND onboarded = FALSE", userID)
	return err
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Onboarded, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
