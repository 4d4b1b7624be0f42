package repository

import (
	"context"

	"team-chat-platform/backend/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	// SetOnboarded marks the user as onboarded. No-op if already set.
	SetOnboarded(ctx context.Context, userID string) error
}
