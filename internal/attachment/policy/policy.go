// Package policy gates channel attachments.
package policy

import (
	"context"

	"team-chat-platform/backend/internal/attachment/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

const entity = "attachment"

// AttachmentGetter loads an attachment by id, (nil, nil) when missing.
type AttachmentGetter interface {
	GetAttachmentByID(ctx context.Context, id string) (*domain.Attachment, error)
}

type Policy struct {
	attachments AttachmentGetter
	memberships authz.MembershipGetter
}

func New(attachments AttachmentGetter, memberships authz.MembershipGetter) *Policy {
	return &Policy{attachments: attachments, memberships: memberships}
}

// CanCreate gates uploading into orgID: any member of the org.
func (p *Policy) CanCreate(ctx context.Context, actor *authz.Actor, orgID string) error {
	return authz.Authorize(ctx, entity, "create", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		return authz.IsMember(ctx, p.memberships, orgID, a.UserID)
	})
}

// CanRead gates downloading the attachment: any member of its org.
func (p *Policy) CanRead(ctx context.Context, actor *authz.Actor, attachmentID string) error {
	return authz.Authorize(ctx, entity, "read", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		att, err := p.attachments.GetAttachmentByID(ctx, attachmentID)
		if err != nil {
			return false, err
		}
		if att == nil {
			return false, nil
		}
		return authz.IsMember(ctx, p.memberships, att.OrgID, a.UserID)
	})
}

// CanDelete gates removing the attachment: the uploader, or an admin or
// owner of the org.
func (p *Policy) CanDelete(ctx context.Context, actor *authz.Actor, attachmentID string) error {
	return authz.Authorize(ctx, entity, "delete", actor, func(ctx context.Context, a authz.Actor) (bool, error) {
		att, err := p.attachments.GetAttachmentByID(ctx, attachmentID)
		if err != nil {
			return false, err
		}
		if att == nil {
			return false, nil
		}
		if att.UploadedBy == a.UserID {
			// The uploader must still be in the org to clean up after
			// themselves.
			return authz.IsMember(ctx, p.memberships, att.OrgID, a.UserID)
		}
		return authz.IsAdminOrOwner(ctx, p.memberships, att.OrgID, a.UserID)
	})
}
