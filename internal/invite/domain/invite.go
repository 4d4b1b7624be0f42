package domain

import (
	"errors"
	"time"

	memdomain "team-chat-platform/backend/internal/membership/domain"
)

// Invite is a pending email invitation into an org.
type Invite struct {
	ID        string
	OrgID     string
	Email     string
	Role      memdomain.Role
	CreatedBy string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Validate validates the invite for persistence.
func (i *Invite) Validate() error {
	if i.OrgID == "" {
		return errors.New("org_id is required")
	}
	if i.Email == "" {
		return errors.New("email is required")
	}
	if !i.Role.Valid() {
		return errors.New("unknown role")
	}
	return nil
}
