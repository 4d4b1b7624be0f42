package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-chat-platform/backend/internal/attachment/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an attachment repository backed by db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const attachmentColumns = "id, channel_id, org_id, uploaded_by, file_name, mime_type, size_bytes, created_at"

// GetAttachmentByID returns the attachment for id, or nil if not found.
func (r *PostgresRepository) GetAttachmentByID(ctx context.Context, id string) (*domain.Attachment, error) {
	var a domain.Attachment
	err := r.db.QueryRowContext(ctx,
		"SELECT "+attachmentColumns+" FROM attachments WHERE id = $1", id).
		Scan(&a.ID, &a.ChannelID, &a.OrgID, &a.UploadedBy, &a.FileName, &a.MimeType, &a.SizeBytes, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListAttachmentsByChannel returns all attachments uploaded into the channel.
func (r *PostgresRepository) ListAttachmentsByChannel(ctx context.Context, channelID string) ([]*domain.Attachment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+attachmentColumns+" FROM attachments WHERE channel_id = $1 ORDER BY created_at", channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.ChannelID, &a.OrgID, &a.UploadedBy, &a.FileName, &a.MimeType, &a.SizeBytes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// CreateAttachment persists the attachment.
func (r *PostgresRepository) CreateAttachment(ctx context.Context, a *domain.Attachment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO attachments (id, channel_id, org_id, uploaded_by, file_name, mime_type, size_bytes, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		a.ID, a.ChannelID, a.OrgID, a.UploadedBy, a.FileName, a.MimeType, a.SizeBytes, a.CreatedAt)
	return err
}

// DeleteAttachment removes the attachment record.
func (r *PostgresRepository) DeleteAttachment(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM attachments WHERE id = $1", id)
	return err
}
