package interceptors

import (
	"context"

	"team-chat-platform/backend/internal/platform/authz"
)

type contextKey struct{ name string }

var actorKey = contextKey{"actor"}

// WithActor returns a context carrying the authenticated actor.
// Handlers read it via ActorFromContext and pass it explicitly into
// policy checks; the policies themselves never touch context values.
func WithActor(ctx context.Context, actor *authz.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the actor set by the auth interceptor and true
// if present; otherwise nil, false.
func ActorFromContext(ctx context.Context) (*authz.Actor, bool) {
	v, ok := ctx.Value(actorKey).(*authz.Actor)
	return v, ok
}
