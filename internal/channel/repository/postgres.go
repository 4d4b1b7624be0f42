package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/channel/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a channel repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const channelColumns = "id, org_id, name, type, created_by, archived, created_at"

// GetChannelByID returns the channel for id, or nil if not found.
func (r *PostgresRepository) GetChannelByID(ctx context.Context, id string) (*domain.Channel, error) {
	var c domain.Channel
	err := r.db.QueryRowContext(ctx,
		"SELECT "+channelColumns+" FROM channels WHERE id = $1", id).
		Scan(&c.ID, &c.OrgID, &c.Name, &c.Type, &c.CreatedBy, &c.Archived, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListChannelsByOrg returns all channels for the given org.
func (r *PostgresRepository) ListChannelsByOrg(ctx context.Context, orgID string) ([]*domain.Channel, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+channelColumns+" FROM channels WHERE org_id = $1 ORDER BY created_at", orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Channel
	for rows.Next() {
		var c domain.Channel
		if err := rows.Scan(&c.ID, &c.OrgID, &c.Name, &c.Type, &c.CreatedBy, &c.Archived, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// CreateChannel persists the channel. The channel must have ID set and be valid.
func (r *PostgresRepository) CreateChannel(ctx context.Context, c *domain.Channel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO channels (id, org_id, name, type, created_by, archived, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		c.ID, c.OrgID, c.Name, c.Type, c.CreatedBy, c.Archived, c.CreatedAt)
	return err
}

// UpdateChannel updates mutable channel fields (name, archived).
func (r *PostgresRepository) UpdateChannel(ctx context.Context, c *domain.Channel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE channels SET name = $2, archived = $3 WHERE id = $1",
		c.ID, c.Name, c.Archived)
	return err
}

// DeleteChannel removes the channel; messages, pins, and participants cascade.
func (r *PostgresRepository) DeleteChannel(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM channels WHERE id = $1", id)
	return err
}

// SetArchived flips the archived flag.
func (r *PostgresRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	_, err := r.db.ExecContext(ctx, "UPDATE channels SET archived = $2 WHERE id = $1", id, archived)
	return err
}
