package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/pinnedmessage/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a pinned-message repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const pinColumns = "id, message_id, channel_id, org_id, pinned_by, note, created_at"

// GetPinByID returns the pin for id, or nil if not found.
func (r *PostgresRepository) GetPinByID(ctx context.Context, id string) (*domain.PinnedMessage, error) {
	var p domain.PinnedMessage
	err := r.db.QueryRowContext(ctx,
		"SELECT "+pinColumns+" FROM pinned_messages WHERE id = $1", id).
		Scan(&p.ID, &p.MessageID, &p.ChannelID, &p.OrgID, &p.PinnedBy, &p.Note, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListPinsByChannel returns all pins for the channel.
func (r *PostgresRepository) ListPinsByChannel(ctx context.Context, channelID string) ([]*domain.PinnedMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+pinColumns+" FROM pinned_messages WHERE channel_id = $1 ORDER BY created_at", channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.PinnedMessage
	for rows.Next() {
		var p domain.PinnedMessage
		if err := rows.Scan(&p.ID, &p.MessageID, &p.ChannelID, &p.OrgID, &p.PinnedBy, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// CreatePin persists the pin. The pin must have ID set and be valid.
func (r *PostgresRepository) CreatePin(ctx context.Context, p *domain.PinnedMessage) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pinned_messages (id, message_id, channel_id, org_id, pinned_by, note, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		p.ID, p.MessageID, p.ChannelID, p.OrgID, p.PinnedBy, p.Note, p.CreatedAt)
	return err
}

// UpdateNote replaces the pin note.
func (r *PostgresRepository) UpdateNote(ctx context.Context, id, note string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE pinned_messages SET note = $2 WHERE id = $1", id, note)
	return err
}

// DeletePin removes the pin.
func (r *PostgresRepository) DeletePin(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM pinned_messages WHERE id = $1", id)
	return err
}
