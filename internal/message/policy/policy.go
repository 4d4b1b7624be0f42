// Package policy gates posting, reading, editing, and deleting messages.
package policy

import (
	"context"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	dmdomain "team-chat-platform/backend/internal/dmparticipant/domain"
	"team-chat-platform/backend/internal/message/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "message"

// MessageGetter loads a message by id, (nil, nil) when missing.
type MessageGetter interface {
	GetMessageByID(ctx context.Context, id string) (*domain.Message, error)
}

// ChannelGetter loads a channel by id, (nil, nil) when missing.
type ChannelGetter interface {
	GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error)
}

// ParticipantGetter loads a DM participant row, (nil, nil) when missing.
type ParticipantGetter interface {
	GetParticipantByChannelAndUser(ctx context.Context, channelID, userID string) (*dmdomain.Participant, error)
}

type Policy struct {
	messages     MessageGetter
	channels     ChannelGetter
	participants ParticipantGetter
	memberships  authz.MembershipGetter
}

func New(messages MessageGetter, channels ChannelGetter, participants ParticipantGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{messages: messages, channels: channels, participants: participants, memberships: memberships}
}

// CanCreate gates posting to channelID: member of the channel's org, and for
// DM channels additionally a participant of that channel.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil || c.Archived {
			return false, nil
		}
		ok, err := authz.IsMember(ctx, p.memberships, c.OrgID, a.UserID)
		if err != nil || !ok {
			return false, err
		}
		if !c.Type.IsDM() {
			return true, nil
		}
		part, err := p.participants.GetParticipantByChannelAndUser(ctx, channelID, a.UserID)
		if err != nil {
			return false, err
		}
		return part != nil, nil
	})
}

// CanRead gates reading a message: member of the message's org.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, messageID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.messages.GetMessageByID(ctx, messageID)
		if err != nil {
			return false, err
		}
		if m == nil {
			return false, nil
		}
		return authz.IsMember(ctx, p.memberships, m.OrgID, a.UserID)
	})
}

// CanUpdate gates editing a message: the author only, no role fallback.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, messageID string) error {
	return authz.Authorize(ctx, entity, "update", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.messages.GetMessageByID(ctx, messageID)
		if err != nil {
			return false, err
		}
		return m != nil && m.AuthorID == a.UserID, nil
	})
}

// CanDelete gates deleting a message: the author, or an admin or owner of
// the message's org.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, messageID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		m, err := p.messages.GetMessageByID(ctx, messageID)
		if err != nil {
			return false, err
		}
		if m == nil {
			return false, nil
		}
		if m.AuthorID == a.UserID {
			return true, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, m.OrgID, a.UserID)
	})
}
