// Package policy gates membership management: adding members, changing
// roles, and removing members (including self-leave).
package policy

import (
	"context"

	"team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "membership"

// Store is the read surface the membership policy needs.
type Store interface {
	GetMembershipByID(ctx context.Context, id string) (*domain.Membership, error)
	GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
	CountOwnersByOrg(ctx context.Context, orgID string) (int64, error)
}

type Policy struct {
	memberships Store
}

func New(memberships Store) *Policy {
	return &Policy{memberships: memberships}
}

// CanCreate gates adding a member to orgID: admin or owner of that org.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanUpdateRole gates changing the role on membershipID to newRole: admin or
// owner of the membership's org, and never demoting the org's last owner.
func (p *Policy) CanUpdateRole(ctx context.Context, actor *authz.Actor, membershipID string, newRole domain.Role) error {
	return authz.Authorize(ctx, entity, "update_role", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.memberships.GetMembershipByID(ctx, membershipID)
		if err != nil {
			return false, err
		}
		if m == nil {
			return false, nil
		}
		ok, err := authz.IsAdminOrOwner(ctx, p.memberships, m.OrgID, a.UserID)
		if err != nil || !ok {
			return false, err
		}
		if m.Role == domain.RoleOwner && newRole != domain.RoleOwner {
			owners, err := p.memberships.CountOwnersByOrg(ctx, m.OrgID)
			if err != nil {
				return false, err
			}
			if owners <= 1 {
				return false, nil
			}
		}
		return true, nil
	})
}

// CanDelete gates removing membershipID: admin or owner of the org, or the
// member themself leaving. The org's last owner can neither be removed nor
// leave.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, membershipID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.memberships.GetMembershipByID(ctx, membershipID)
		if err != nil {
			return false, err
		}
		if m == nil {
			return false, nil
		}
		if m.Role == domain.RoleOwner {
			owners, err := p.memberships.CountOwnersByOrg(ctx, m.OrgID)
			if err != nil {
				return false, err
			}
			if owners <= 1 {
				return false, nil
			}
		}
		if m.UserID == a.UserID {
			return true, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, m.OrgID, a.UserID)
	})
}
