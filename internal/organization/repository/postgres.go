package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/organization/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an organization repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrganizationByID returns the org for id, or nil if not found.
func (r *PostgresRepository) GetOrganizationByID(ctx context.Context, id string) (*domain.Org, error) {
	var o domain.Org
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, status, created_at FROM organizations WHERE id = $1", id).
		Scan(&o.ID, &o.Name, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// CreateOrganization persists the org. The org must have ID set and be valid.
func (r *PostgresRepository) CreateOrganization(ctx context.Context, o *domain.Org) error {
	if err := o.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO organizations (id, name, status, created_at) VALUES ($1, $2, $3, $4)",
		o.ID, o.Name, o.Status, o.CreatedAt)
	return err
}

// UpdateOrganization updates name and status for the org.
func (r *PostgresRepository) UpdateOrganization(ctx context.Context, o *domain.Org) error {
	if err := o.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE organizations SET name = $2, status = $3 WHERE id = $1",
		o.ID, o.Name, o.Status)
	return err
}

// DeleteOrganization removes the org. Memberships, channels, and dependents
// cascade via foreign keys.
func (r *PostgresRepository) DeleteOrganization(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM organizations WHERE id = $1", id)
	return err
}
