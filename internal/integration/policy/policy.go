// Package policy gates integration connections (Discord, Slack, Linear,
// GitHub). Reading is open to the org; every write is an admin concern.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/integration/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "integration_connection"

// ConnectionGetter loads a connection by id, (nil, nil) when missing.
type ConnectionGetter interface {
	GetConnectionByID(ctx context.Context, id string) (*domain.Connection, error)
}

// InstallGuard is the optional org guardrail overlay consulted on inserts
// (see internal/guardrail). Nil disables it.
type InstallGuard interface {
	AllowInstall(ctx context.Context, orgID, actorID, kind, name string) (bool, error)
}

type Policy struct {
	connections ConnectionGetter
	memberships authz.MembershipGetter
	guard       InstallGuard
}

func New(connections ConnectionGetter, memberships authz.MembershipGetter, guard InstallGuard) *Policy {
	return &Policy{connections: connections, memberships: memberships, guard: guard}
}

// CanSelect gates reading a connection: any member of its org.
func (p *Policy) CanSelect(ctx context.Context, actor *authz.Actor, connectionID string) error {
	return authz.Authorize(ctx, entity, "select", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.connections.GetConnectionByID(ctx, connectionID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return authz.IsMember(ctx, p.memberships, c.OrgID, a.UserID)
	})
}

// CanInsert gates connecting provider to orgID: admin or owner of the org,
// subject to the org's guardrail overlay.
func (p *Policy) CanInsert(ctx context.Context, actor *authz.Actor, orgID string, provider domain.Provider) error {
	return authz.Authorize(ctx, entity, "insert", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		ok, err := authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
		if err != nil || !ok {
			return false, err
		}
		if p.guard == nil {
			return true, nil
		}
		return p.guard.AllowInstall(ctx, orgID, a.UserID, "integration", string(provider))
	})
}

// CanUpdate gates editing the connection: admin or owner of its org.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, connectionID string) error {
	return p.orgAdmin(ctx, "update", actor, connectionID)
}

// CanDelete gates removing the connection: admin or owner of its org.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, connectionID string) error {
	return p.orgAdmin(ctx, "delete", actor, connectionID)
}

func (p *Policy) orgAdmin(ctx context.Context, operation string, actor *authz.Actor, connectionID string) error {
	return authz.Authorize(ctx, entity, operation, actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.connections.GetConnectionByID(ctx, connectionID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, c.OrgID, a.UserID)
	})
}
