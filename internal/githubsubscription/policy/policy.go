// Package policy gates GitHub event subscriptions. Every operation is an
// org-admin concern: subscriptions carry repository credentials context and
// post on behalf of the integration.
package policy

import (
	"context"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	"team-chat-platform/backend/internal/githubsubscription/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "github_subscription"

// SubscriptionGetter loads a subscription by id, (nil, nil) when missing.
type SubscriptionGetter interface {
	GetSubscriptionByID(ctx context.Context, id string) (*domain.Subscription, error)
}

// ChannelGetter loads a channel by id, (nil, nil) when missing.
type ChannelGetter interface {
	GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error)
}

type Policy struct {
	subscriptions SubscriptionGetter
	channels      ChannelGetter
	memberships   authz.MembershipGetter
}

func New(subscriptions SubscriptionGetter, channels ChannelGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{subscriptions: subscriptions, channels: channels, memberships: memberships}
}

// CanCreate gates subscribing channelID to a repo: admin or owner of the
// channel's org.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, channelID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
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

// CanRead gates reading the subscription: admin or owner of its org.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, subscriptionID string) error {
	return p.orgAdmin(ctx, "read", actor, subscriptionID)
}

// CanUpdate gates changing the event list: admin or owner of its org.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, subscriptionID string) error {
	return p.orgAdmin(ctx, "update", actor, subscriptionID)
}

// CanDelete gates removing the subscription: admin or owner of its org.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, subscriptionID string) error {
	return p.orgAdmin(ctx, "delete", actor, subscriptionID)
}

func (p *Policy) orgAdmin(ctx context.Context, operation string, actor *authz.Actor, subscriptionID string) error {
	return authz.Authorize(ctx, entity, operation, actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		s, err := p.subscriptions.GetSubscriptionByID(ctx, subscriptionID)
		if err != nil {
			return false, err
		}
		if s == nil {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, s.OrgID, a.UserID)
	})
}
