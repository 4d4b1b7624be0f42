package domain

import (
	"errors"
	"time"
)

// Bot is a user-authored automation. A bot is owned by its creator and can be
// installed into organizations by their admins.
type Bot struct {
	ID          string
	OrgID       string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// Validate validates the bot for persistence.
func (b *Bot) Validate() error {
	if b.Name == "" {
		return errors.New("name is required")
	}
	if b.CreatedBy == "" {
		return errors.New("created_by is required")
	}
	return nil
}
