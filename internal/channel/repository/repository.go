package repository

import (
	"context"

	"team-chat-platform/backend/internal/channel/domain"
)

// Repository defines persistence for channels.
type Repository interface {
	GetChannelByID(ctx context.Context, id string) (*domain.Channel, error)
	ListChannelsByOrg(ctx context.Context, orgID string) ([]*domain.Channel, error)
	CreateChannel(ctx context.Context, c *domain.Channel) error
	UpdateChannel(ctx context.Context, c *domain.Channel) error
	DeleteChannel(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) error
}
