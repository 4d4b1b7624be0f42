// Package domain defines uploaded file attachments.
package domain

import (
	"errors"
	"time"
)

// Attachment is a file uploaded into a channel.
type Attachment struct {
	ID         string
	ChannelID  string
	OrgID      string
	UploadedBy string
	FileName   string
	MimeType   string
	SizeBytes  int64
	CreatedAt  time.Time
}

// Validate validates the attachment for persistence.
func (a *Attachment) Validate() error {
	if a.ChannelID == "" {
		return errors.New("channel_id is required")
	}
	if a.OrgID == "" {
		return errors.New("org_id is required")
	}
	if a.UploadedBy == "" {
		return errors.New("uploaded_by is required")
	}
	if a.FileName == "" {
		return errors.New("file_name is required")
	}
	return nil
}
