// Package policy gates presence records.
//
// Presence is self-managed ephemeral state: any authenticated actor may
// read, update, and clear it. The policy still exists so the handler
// layer is uniform and so an unauthenticated caller is rejected with the
// same error shape as every other entity.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "presence"

type Policy struct{}

func New() *Policy {
	return &Policy{}
}

func allow(ctx context.Context, a authz.Actor) (bool, error) {
	return true, nil
}

// CanRead gates reading presence: any authenticated actor.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor) error {
	return authz.Authorize(ctx, entity, "read", actor, allow)
}

// CanUpdate gates updating presence: any authenticated actor.
func (p *Policy) CanUpdate(ctx context.Context, actor *authz.Actor) error {
	return authz.Authorize(ctx, entity, "update", actor, allow)
}

// CanDelete gates clearing presence: any authenticated actor.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor) error {
	return authz.Authorize(ctx, entity, "delete", actor, allow)
}
