package policy

import (
	"context"
	"errors"
	"testing"

	attdomain "team-chat-platform/backend/internal/attachment/domain"
	memdomain "team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

type mockAttachments struct {
	byID map[string]*attdomain.Attachment
	err  error
}

func (m *mockAttachments) GetAttachmentByID(ctx context.Context, id string) (*attdomain.Attachment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byID[id], nil
}

type mockMemberships struct {
	byUserOrg map[string]*memdomain.Membership
}

func (m *mockMemberships) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*memdomain.Membership, error) {
	return m.byUserOrg[userID+":"+orgID], nil
}

func fixture() (*mockAttachments, *mockMemberships) {
	atts := &mockAttachments{byID: map[string]*attdomain.Attachment{
		"att-1": {ID: "att-1", ChannelID: "ch-1", OrgID: "org-1", UploadedBy: "user-uploader", FileName: "report.pdf"},
	}}
	ms := &mockMemberships{byUserOrg: map[string]*memdomain.Membership{
		"user-uploader:org-1": {ID: "m1", UserID: "user-uploader", OrgID: "org-1", Role: memdomain.RoleMember},
		"user-admin:org-1":    {ID: "m2", UserID: "user-admin", OrgID: "org-1", Role: memdomain.RoleAdmin},
		"user-member:org-1":   {ID: "m3", UserID: "user-member", OrgID: "org-1", Role: memdomain.RoleMember},
	}}
	return atts, ms
}

func actor(userID string) *authz.Actor { return &authz.Actor{UserID: userID} }

func TestCanCreate(t *testing.T) {
	atts, ms := fixture()
	p := New(atts, ms)

	if err := p.CanCreate(context.Background(), actor("user-member"), "org-1"); err != nil {
		t.Fatalf("member upload: unexpected error: %v", err)
	}
	if err := p.CanCreate(context.Background(), actor("user-stranger"), "org-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("non-member upload: want ErrUnauthorized, got %v", err)
	}
}

func TestCanRead(t *testing.T) {
	atts, ms := fixture()
	p := New(atts, ms)

	if err := p.CanRead(context.Background(), actor("user-member"), "att-1"); err != nil {
		t.Fatalf("member read: unexpected error: %v", err)
	}
	if err := p.CanRead(context.Background(), actor("user-stranger"), "att-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("non-member read: want ErrUnauthorized, got %v", err)
	}
	if err := p.CanRead(context.Background(), actor("user-member"), "att-missing"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("missing attachment: want ErrUnauthorized, got %v", err)
	}
}

func TestCanDelete(t *testing.T) {
	atts, ms := fixture()
	p := New(atts, ms)

	if err := p.CanDelete(context.Background(), actor("user-uploader"), "att-1"); err != nil {
		t.Fatalf("uploader delete: unexpected error: %v", err)
	}
	if err := p.CanDelete(context.Background(), actor("user-admin"), "att-1"); err != nil {
		t.Fatalf("admin delete: unexpected error: %v", err)
	}
	if err := p.CanDelete(context.Background(), actor("user-member"), "att-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("other member delete: want ErrUnauthorized, got %v", err)
	}
}

func TestCanDeleteUploaderLeftOrg(t *testing.T) {
	atts, ms := fixture()
	delete(ms.byUserOrg, "user-uploader:org-1")
	p := New(atts, ms)

	err := p.CanDelete(context.Background(), actor("user-uploader"), "att-1")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("departed uploader delete: want ErrUnauthorized, got %v", err)
	}
}

func TestLookupErrorPropagates(t *testing.T) {
	atts, ms := fixture()
	boom := errors.New("db down")
	atts.err = boom
	p := New(atts, ms)

	err := p.CanDelete(context.Background(), actor("user-admin"), "att-1")
	if !errors.Is(err, boom) {
		t.Fatalf("want lookup error, got %v", err)
	}
}
