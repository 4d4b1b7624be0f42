package repository

import (
	"context"

	"team-chat-platform/backend/internal/guardrail/domain"
)

// Repository defines persistence for guardrail rules.
type Repository interface {
	GetRuleByID(ctx context.Context, id string) (*domain.Rule, error)
	ListRulesByOrg(ctx context.Context, orgID string) ([]*domain.Rule, error)
	GetEnabledRulesByOrg(ctx context.Context, orgID string) ([]*domain.Rule, error)
	CreateRule(ctx context.Context, r *domain.Rule) error
	UpdateRule(ctx context.Context, r *domain.Rule) error
	DeleteRule(ctx context.Context, id string) error
}
