// Package policy gates organization reads and management.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "organization"

type Policy struct {
	memberships authz.MembershipGetter
}

func New(memberships authz.MembershipGetter) *Policy {
	return &Policy{memberships: memberships}
}

// CanRead gates reading org details: any member of the org.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsMember(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanUpdate gates updating org settings: admin or owner.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "update", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanDelete gates deleting the org. This is the one rule where owner is
// deliberately distinguished from admin: only an owner may delete.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.memberships.GetMembershipByUserAndOrg(ctx, a.UserID, orgID)
		if err != nil {
			return false, err
		}
		return m != nil && m.Role == domain.RoleOwner, nil
	})
}
