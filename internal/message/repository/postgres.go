package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/message/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a message repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageColumns = "id, channel_id, org_id, author_id, body, edited_at, created_at"

// GetMessageByID returns the message for id, or nil if not found.
func (r *PostgresRepository) GetMessageByID(ctx context.Context, id string) (*domain.Message, error) {
	var m domain.Message
	err := r.db.QueryRowContext(ctx,
		"SELECT "+messageColumns+" FROM messages WHERE id = $1", id).
		Scan(&m.ID, &m.ChannelID, &m.OrgID, &m.AuthorID, &m.Body, &m.EditedAt, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListMessagesByChannel returns up to limit most recent messages for the channel.
func (r *PostgresRepository) ListMessagesByChannel(ctx context.Context, channelID string, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+messageColumns+" FROM messages WHERE channel_id = $1 ORDER BY created_at DESC LIMIT $2",
		channelID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ChannelID, &m.OrgID, &m.AuthorID, &m.Body, &m.EditedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// CreateMessage persists the message. The message must have ID set and be valid.
func (r *PostgresRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (id, channel_id, org_id, author_id, body, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		m.ID, m.ChannelID, m.OrgID, m.AuthorID, m.Body, m.CreatedAt)
	return err
}

// UpdateBody replaces the message body and stamps edited_at.
func (r *PostgresRepository) UpdateBody(ctx context.Context, id, body string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE messages SET body = $2, edited_at = NOW() WHERE id = $1", id, body)
	return err
}

// DeleteMessage removes the message; pins and attachments cascade.
func (r *PostgresRepository) DeleteMessage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE id = $1", id)
	return err
}
