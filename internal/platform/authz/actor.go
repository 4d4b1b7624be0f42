// Package authz holds the shared authorization primitives: the actor
// identity, the organization scope checks, and the Authorize wrapper that
// every per-entity policy builds on.
package authz

import (
	"team-chat-platform/backend/internal/membership/domain"
)

// Actor is the authenticated identity performing an operation. It is built
// once at the request boundary (see internal/server/interceptors) and passed
// explicitly into every policy check; policies never read it from context.
// A nil *Actor always denies.
type Actor struct {
	UserID string
	// OrgID is the actor's home organization; empty when the actor has none.
	OrgID string
	// Role is the actor's role in the home org. Informational: org-scoped
	// decisions re-resolve the membership for the org under check.
	Role domain.Role
	// Onboarded reports whether the user finished onboarding.
	Onboarded bool
}
