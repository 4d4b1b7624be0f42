package domain

import (
	"errors"
	"time"
)

// Connection binds a channel to an external integration provider. Credential
// material lives elsewhere; this row only carries routing and ownership.
type Connection struct {
	ID        string
	ChannelID string
	OrgID     string
	Provider  Provider
	// ExternalRef identifies the remote side (Discord channel, Slack
	// workspace, Linear team, GitHub repo).
	ExternalRef string
	CreatedBy   string
	CreatedAt   time.Time
}

type Provider string

const (
	ProviderDiscord Provider = "discord"
	ProviderSlack   Provider = "slack"
	ProviderLinear  Provider = "linear"
	ProviderGitHub  Provider = "github"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderDiscord, ProviderSlack, ProviderLinear, ProviderGitHub:
		return true
	}
	return false
}

// Validate validates the connection for persistence.
func (c *Connection) Validate() error {
	if c.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if !c.Provider.Valid() {
		return errors.New("unknown provider")
	}
	return nil
}
