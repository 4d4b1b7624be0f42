// Package policy gates pinning and unpinning messages.
package policy

import (
	"context"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	"team-chat-platform/backend/internal/pinnedmessage/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "pinned_message"

// PinGetter loads a pin by id, (nil, nil) when missing.
type PinGetter interface {
	GetPinByID(ctx context.Context, id string) (*domain.PinnedMessage, error)
}

// ChannelGetter loads a channel by id, (nil, nil) when missing.
type ChannelGetter interface {
	GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error)
}

type Policy struct {
	pins        PinGetter
	channels    ChannelGetter
	memberships authz.MembershipGetter
}

func New(pins PinGetter, channels ChannelGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{pins: pins, channels: channels, memberships: memberships}
}

// CanCreate gates pinning a message in channelID. Admins and owners may pin
// in any channel of their org; plain members only in public channels, which
// leaves private and DM channels admin-only.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		admin, err := authz.IsAdminOrOwner(ctx, p.memberships, c.OrgID, a.UserID)
		if err != nil {
			return false, err
		}
		if admin {
			return true, nil
		}
		if c.Type != chandomain.ChannelTypePublic {
			return false, nil
		}
		return authz.IsMember(ctx, p.memberships, c.OrgID, a.UserID)
	})
}

// CanUpdate gates editing the pin note: the pinner, or an admin or owner of
// the pin's org.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, pinID string) error {
	return p.pinnerOrOrgAdmin(ctx, "update", actor, pinID)
}

// CanDelete gates unpinning: the pinner, or an admin or owner of the pin's
// org. Owner is ranked with admin here like everywhere else.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, pinID string) error {
	return p.pinnerOrOrgAdmin(ctx, "delete", actor, pinID)
}

func (p *Policy) pinnerOrOrgAdmin(ctx context.Context, operation string, actor *authz.Actor, pinID string) error {
	return authz.Authorize(ctx, entity, operation, actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		pin, err := p.pins.GetPinByID(ctx, pinID)
		if err != nil {
			return false, err
		}
		if pin == nil {
			return false, nil
		}
		if pin.PinnedBy == a.UserID {
			return true, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, pin.OrgID, a.UserID)
	})
}
