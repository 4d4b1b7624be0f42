package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/integration/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an integration connection repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const connColumns = "id, channel_id, org_id, provider, external_ref, created_by, created_at"

// GetConnectionByID returns the connection for id, or nil if not found.
func (r *PostgresRepository) GetConnectionByID(ctx context.Context, id string) (*domain.Connection, error) {
	var c domain.Connection
	err := r.db.QueryRowContext(ctx,
		"SELECT "+connColumns+" FROM integration_connections WHERE id = $1", id).
		Scan(&c.ID, &c.ChannelID, &c.OrgID, &c.Provider, &c.ExternalRef, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListConnectionsByOrg returns all connections for the org.
func (r *PostgresRepository) ListConnectionsByOrg(ctx context.Context, orgID string) ([]*domain.Connection, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+connColumns+" FROM integration_connections WHERE org_id = $1 ORDER BY created_at", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Connection
	for rows.Next() {
		var c domain.Connection
		if err := rows.Scan(&c.ID, &c.ChannelID, &c.OrgID, &c.Provider, &c.ExternalRef, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// CreateConnection persists the connection.
func (r *PostgresRepository) CreateConnection(ctx context.Context, c *domain.Connection) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO integration_connections (id, channel_id, org_id, provider, external_ref, created_by, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		c.ID, c.ChannelID, c.OrgID, c.Provider, c.ExternalRef, c.CreatedBy, c.CreatedAt)
	return err
}

// UpdateExternalRef repoints the connection at a different remote resource.
func (r *PostgresRepository) UpdateExternalRef(ctx context.Context, id, externalRef string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE integration_connections SET external_ref = $2 WHERE id = $1", id, externalRef)
	return err
}

// DeleteConnection removes the connection.
func (r *PostgresRepository) DeleteConnection(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM integration_connections WHERE id = $1", id)
	return err
}
