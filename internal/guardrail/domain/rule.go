// Package domain defines org-level guardrail rules.
package domain

import "time"

// Rule is a Rego module stored for an org. Enabled rules are compiled
// together and consulted as a deny overlay on install operations.
type Rule struct {
	ID        string
	OrgID     string
	Rules     string
	Enabled   bool
	CreatedAt time.Time
}
