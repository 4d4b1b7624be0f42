// Package policy gates bot authoring and installation.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/bot/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "bot"

// BotGetter loads a bot by id, (nil, nil) when missing.
type BotGetter interface {
	GetBotByID(ctx context.Context, id string) (*domain.Bot, error)
}

// InstallGuard is an optional org-level deny overlay consulted on installs
// after the built-in role rule allows (see internal/guardrail). Nil disables
// the overlay; it can never grant what the role rule denied.
type InstallGuard interface {
	AllowInstall(ctx context.Context, orgID, actorID, kind, name string) (bool, error)
}

type Policy struct {
	bots        BotGetter
	memberships authz.MembershipGetter
	guard       InstallGuard
}

func New(bots BotGetter, memberships authz.MembershipGetter, guard InstallGuard) *Policy {
	return &Policy{bots: bots, memberships: memberships, guard: guard}
}

// CanCreate gates creating a bot in orgID: any member of the target org.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsMember(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanRead gates reading bot details: the creator, or an actor with a home
// org where they are admin or owner.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, botID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		b, err := p.bots.GetBotByID(ctx, botID)
		if err != nil {
			return false, err
		}
		if b == nil {
			return false, nil
		}
		if b.CreatedBy == a.UserID {
			return true, nil
		}
		if a.OrgID == "" {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, a.OrgID, a.UserID)
	})
}

// CanUpdate gates editing the bot: the creator only. The org-admin fallback
// is read-only; it does not extend to writes.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor, botID string) error {
	return p.creatorOnly(ctx, "update", actor, botID)
}

// CanDelete gates deleting the bot: the creator only.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, botID string) error {
	return p.creatorOnly(ctx, "delete", actor, botID)
}

// CanInstall gates installing botID into orgID: admin or owner of the target
// org, subject to the org's guardrail overlay.
func (p *Policy) CanInstall(ctx context.Context, actor *authz.Actor, botID, orgID string) error {
	return authz.Authorize(ctx, entity, "install", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		b, err := p.bots.GetBotByID(ctx, botID)
		if err != nil {
			return false, err
		}
		if b == nil {
			return false, nil
		}
		ok, err := authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
		if err != nil || !ok {
			return false, err
		}
		if p.guard == nil {
			return true, nil
		}
		return p.guard.AllowInstall(ctx, orgID, a.UserID, "bot", b.Name)
	})
}

// CanUninstall gates removing botID from orgID: admin or owner of the target org.
func (p *Policy) CanUninstall(ctx context.Context, actor *authz.Actor, botID, orgID string) error {
	return authz.Authorize(ctx, entity, "uninstall", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		b, err := p.bots.GetBotByID(ctx, botID)
		if err != nil {
			return false, err
		}
		if b == nil {
			return false, nil
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, orgID, a.UserID)
	})
}

func (p *Policy) creatorOnly(ctx context.Context, operation string, actor *authz.Actor, botID string) error {
	return authz.Authorize(ctx, entity, operation, actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		b, err := p.bots.GetBotByID(ctx, botID)
		if err != nil {
			return false, err
		}
		return b != nil && b.CreatedBy == a.UserID, nil
	})
}
