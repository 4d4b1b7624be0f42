package repository

import (
	"context"

	"team-chat-platform/backend/internal/attachment/domain"
)

// Repository defines persistence for attachments.
type Repository interface {
	GetAttachmentByID(ctx context.Context, id string) (*domain.Attachment, error)
	ListAttachmentsByChannel(ctx context.Context, channelID string) ([]*domain.Attachment, error)
	CreateAttachment(ctx context.Context, a *domain.Attachment) error
	DeleteAttachment(ctx context.Context, id string) error
}
