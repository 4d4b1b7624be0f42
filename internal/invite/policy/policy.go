// Package policy gates org invitations.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/invite/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "invite"

// InviteGetter loads an invite by id, (nil, nil) when missing.
type InviteGetter interface {
	GetInviteByID(ctx context.Context, id string) (*domain.Invite, error)
}

type Policy struct {
	invites     InviteGetter
	memberships authz.MembershipGetter
}

func New(invites InviteGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{invites: invites, memberships: memberships}
}

// CanCreate gates inviting into orgID: admin or owner.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanRead gates reading the invite: its creator, or an admin or owner of the org.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, inviteID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		i, err := p.invites.GetInviteByID(ctx, inviteID)
		if err != nil {
			return false, err
		}
		if i == nil {
			return false, nil
		}
		if i.CreatedBy == a.UserID {
			return true, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, i.OrgID, a.UserID)
	})
}

// CanDelete gates revoking the invite: admin or owner of the org.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, inviteID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		i, err := p.invites.GetInviteByID(ctx, inviteID)
		if err != nil {
			return false, err
		}
		if i == nil {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, i.OrgID, a.UserID)
	})
}
