package repository

import (
	"context"

	"team-chat-platform/backend/internal/invite/domain"
)

// Repository defines persistence for invites.
type Repository interface {
	GetInviteByID(ctx context.Context, id string) (*domain.Invite, error)
	ListInvitesByOrg(ctx context.Context, orgID string) ([]*domain.Invite, error)
	CreateInvite(ctx context.Context, i *domain.Invite) error
	DeleteInvite(ctx context.Context, id string) error
}
