package domain

import "time"

// Event is a platform observability event (org-scoped, optional user/channel).
// Policy decisions are the main producer; handlers emit one per check.
type Event struct {
	OrgID     string    `json:"orgId,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	ChannelID string    `json:"channelId,omitempty"`
	EventType string    `json:"eventType,omitempty"`
	Source    string    `json:"source,omitempty"`
	Decision  string    `json:"decision,omitempty"`
	Metadata  []byte    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
