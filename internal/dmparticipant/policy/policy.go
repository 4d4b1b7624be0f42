// Package policy gates DM roster rows: joining a DM channel, updating one's
// own participant row (read cursor), and leaving.
package policy

import (
	"context"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	"team-chat-platform/backend/internal/dmparticipant/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "dm_participant"

// ParticipantGetter loads a participant row by id, (nil, nil) when missing.
type ParticipantGetter interface {
	GetParticipantByID(ctx context.Context, id string) (*domain.Participant, error)
}

// ChannelGetter loads a channel by id, (nil, nil) when missing.
type ChannelGetter interface {
	GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error)
}

type Policy struct {
	participants ParticipantGetter
	channels     ChannelGetter
}

func New(participants ParticipantGetter, channels ChannelGetter) *Policy {
	return &Policy{participants: participants, channels: channels}
}

// CanCreate gates adding a participant row to channelID: only DM-shaped
// channels (direct or single) carry rosters.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		c, err := p.channels.GetChannelByID(ctx, channelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return c.Type.IsDM(), nil
	})
}

// CanUpdate gates updating a participant row: only the participant themself.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, participantID string) error {
	return authz.Authorize(ctx, entity, "update", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		part, err := p.participants.GetParticipantByID(ctx, participantID)
		if err != nil {
			return false, err
		}
		return part != nil && part.UserID == a.UserID, nil
	})
}

// CanDelete gates leaving: the participant themself, except in single-type
// channels — a self-DM cannot be left.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, participantID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		part, err := p.participants.GetParticipantByID(ctx, participantID)
		if err != nil {
			return false, err
		}
		if part == nil || part.UserID != a.UserID {
			return false, nil
		}
		c, err := p.channels.GetChannelByID(ctx, part.ChannelID)
		if err != nil {
			return false, err
		}
		if c == nil {
			return false, nil
		}
		return c.Type != chandomain.ChannelTypeSingle, nil
	})
}
