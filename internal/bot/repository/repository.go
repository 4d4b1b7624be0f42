package repository

import (
	"context"

	"team-chat-platform/backend/internal/bot/domain"
)

// Repository defines persistence for bots.
type Repository interface {
	GetBotByID(ctx context.Context, id string) (*domain.Bot, error)
	ListBotsByOrg(ctx context.Context, orgID string) ([]*domain.Bot, error)
	CreateBot(ctx context.Context, b *domain.Bot) error
	UpdateBot(ctx context.Context, b *domain.Bot) error
	DeleteBot(ctx context.Context, id string) error
}
