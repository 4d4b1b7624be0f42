package engine

import "context"

// Guard answers whether an install operation is allowed by the org's
// guardrail rules. It is consulted only after the role-based policy has
// already allowed the operation, so it can deny but never grant.
type Guard interface {
	// AllowInstall evaluates the org's guardrail rules for installing the
	// named thing. kind is "bot" or "integration". Returns true when no
	// rule objects.
	AllowInstall(ctx context.Context, orgID, actorID, kind, name string) (bool, error)
}
