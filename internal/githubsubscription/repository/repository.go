package repository

import (
	"context"

	"team-chat-platform/backend/internal/githubsubscription/domain"
)

// Repository defines persistence for GitHub subscriptions.
type Repository interface {
	GetSubscriptionByID(ctx context.Context, id string) (*domain.Subscription, error)
	ListSubscriptionsByChannel(ctx context.Context, channelID string) ([]*domain.Subscription, error)
	CreateSubscription(ctx context.Context, s *domain.Subscription) error
	UpdateEvents(ctx context.Context, id string, events []string) error
	DeleteSubscription(ctx context.Context, id string) error
}
