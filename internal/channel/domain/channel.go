package domain

import (
	"errors"
	"time"
)

// Channel is a conversation surface inside an org: regular public/private
// channels plus the two DM shapes (direct for two-party, single for the
// self-DM notes channel).
type Channel struct {
	ID        string
	OrgID     string
	Name      string
	Type      ChannelType
	CreatedBy string
	Archived  bool
	CreatedAt time.Time
}

type ChannelType string

const (
	ChannelTypePublic  ChannelType = "public"
	ChannelTypePrivate ChannelType = "private"
	ChannelTypeDirect  ChannelType = "direct"
	ChannelTypeSingle  ChannelType = "single"
)

// IsDM reports whether the channel is one of the direct-message shapes.
func (t ChannelType) IsDM() bool {
	return t == ChannelTypeDirect || t == ChannelTypeSingle
}

// Validate validates the channel for persistence.
func (c *Channel) Validate() error {
	if c.OrgID == "" {
		return errors.New("org_id is required")
	}
	switch c.Type {
	case ChannelTypePublic, ChannelTypePrivate, ChannelTypeDirect, ChannelTypeSingle:
	default:
		return errors.New("unknown channel type")
	}
	if c.Name == "" && !c.Type.IsDM() {
		return errors.New("name is required")
	}
	return nil
}
