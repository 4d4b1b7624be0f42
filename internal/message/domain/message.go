package domain

import (
	"errors"
	"time"
)

// Message is a single chat message in a channel.
type Message struct {
	ID        string
	ChannelID string
	OrgID     string
	AuthorID  string
	Body      string
	EditedAt  *time.Time
	CreatedAt time.Time
}

// Validate validates the message for persistence.
func (m *Message) Validate() error {
	if m.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if m.AuthorID == "" {
		return errors.New("author_id is required")
	}
	if m.Body == "" {
		return errors.New("body is required")
	}
	return nil
}
