package domain

import (
	"errors"
	"time"
)

// PinnedMessage marks a message as pinned in its channel.
type PinnedMessage struct {
	ID        string
	MessageID string
	ChannelID string
	OrgID     string
	PinnedBy  string
	Note      string
	CreatedAt time.Time
}

// Validate validates the pin for persistence.
func (p *PinnedMessage) Validate() error {
	if p.MessageID == "" {
		return errors.New("message_id is required")
	}
	if p.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if p.PinnedBy == "" {
		return errors.New("pinned_by is required")
	}
	return nil
}
