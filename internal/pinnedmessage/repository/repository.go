package repository

import (
	"context"

	"team-chat-platform/backend/internal/pinnedmessage/domain"
)

// Repository defines persistence for pinned messages.
type Repository interface {
	GetPinByID(ctx context.Context, id string) (*domain.PinnedMessage, error)
	ListPinsByChannel(ctx context.Context, channelID string) ([]*domain.PinnedMessage, error)
	CreatePin(ctx context.Context, p *domain.PinnedMessage) error
	UpdateNote(ctx context.Context, id, note string) error
	DeletePin(ctx context.Context, id string) error
}
