package domain

import (
	"errors"
	"time"
)

// Subscription routes events from a GitHub repository into a channel.
type Subscription struct {
	ID        string
	ChannelID string
	OrgID     string
	Repo      string // owner/name
	Events    []string
	CreatedBy string
	CreatedAt time.Time
}

// Validate validates the subscription for persistence.
func (s *Subscription) Validate() error {
	if s.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if s.Repo == "" {
		return errors.New("repo is required")
	}
	return nil
}
