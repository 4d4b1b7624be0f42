package repository

import (
	"context"

	"team-chat-platform/backend/internal/message/domain"
)

// Repository defines persistence for messages.
type Repository interface {
	GetMessageByID(ctx context.Context, id string) (*domain.Message, error)
	ListMessagesByChannel(ctx context.Context, channelID string, limit int) ([]*domain.Message, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	UpdateBody(ctx context.Context, id, body string) error
	DeleteMessage(ctx context.Context, id string) error
}
