package repository

import (
	"context"

	"team-chat-platform/backend/internal/integration/domain"
)

// Repository defines persistence for integration connections.
type Repository interface {
	GetConnectionByID(ctx context.Context, id string) (*domain.Connection, error)
	ListConnectionsByOrg(ctx context.Context, orgID string) ([]*domain.Connection, error)
	CreateConnection(ctx context.Context, c *domain.Connection) error
	UpdateExternalRef(ctx context.Context, id, externalRef string) error
	DeleteConnection(ctx context.Context, id string) error
}
