package domain

import (
	"errors"
	"time"
)

// Participant is one user's row in a direct-message channel (type direct or
// single). Regular channels have no roster; org membership gates them.
type Participant struct {
	ID        string
	ChannelID string
	UserID    string
	// LastReadAt tracks the participant's read cursor; self-managed.
	LastReadAt *time.Time
	CreatedAt  time.Time
}

// Validate validates the participant for persistence.
func (p *Participant) Validate() error {
	if p.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	return nil
}
