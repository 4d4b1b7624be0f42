// Package policy gates channel lifecycle operations.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/channel/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "channel"

// ChannelGetter loads a channel by id, (nil, nil) when missing.
type ChannelGetter interface {
	GetChannelByID(ctx context.Context, id string) (*domain.Channel, error)
}

type Policy struct {
	channels    ChannelGetter
	memberships authz.MembershipGetter
}

func New(channels ChannelGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{channels: channels, memberships: memberships}
}

// CanCreate gates creating a channel in orgID: any member of the org.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsMember(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanRead gates reading channel metadata and history: any member of the
// channel's org. DM rosters constrain message posting, not channel reads.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return authz.IsMember(ctx, p.memberships, c.OrgID, a.UserID)
	})
}

// CanUpdate gates renaming or editing the channel: the creator, or an admin
// or owner of the channel's org.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, channelID string) error {
	return p.creatorOrOrgAdmin(ctx, "update", actor, channelID)
}

// CanDelete gates deleting the channel: the creator, or an admin or owner.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, channelID string) error {
	return p.creatorOrOrgAdmin(ctx, "delete", actor, channelID)
}

// CanArchive gates archiving/unarchiving: admin or owner of the channel's org.
func (p *Policy) CanArchive(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "archive", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, c.OrgID, a.UserID)
	})
}

func (p *Policy) creatorOrOrgAdmin(ctx context.Context, operation string, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, operation, actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		if c.CreatedBy == a.UserID {
			return true, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, c.OrgID, a.UserID)
	})
}
