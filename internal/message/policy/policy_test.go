package policy

import (
	"context"
	"errors"
	"testing"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	dmdomain "team-chat-platform/backend/internal/dmparticipant/domain"
	memdomain "team-chat-platform/backend/internal/membership/domain"
	msgdomain "team-chat-platform/backend/internal/message/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

type mocks struct {
	messages     map[string]*msgdomain.Message
	channels     map[string]*chandomain.Channel
	participants map[string]*dmdomain.Participant
	memberships  map[string]*memdomain.Membership
}

func (m *mocks) GetMessageByID(ctx context.Context, id string) (*msgdomain.Message, error) {
	return m.messages[id], nil
}

func (m *mocks) GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error) {
	return m.channels[id], nil
}

func (m *mocks) GetParticipantByChannelAndUser(ctx context.Context, channelID, userID string) (*dmdomain.Participant, error) {
	return m.participants[channelID+":"+userID], nil
}

func (m *mocks) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*memdomain.Membership, error) {
	return m.memberships[userID+":"+orgID], nil
}

func fixture() *mocks {
	return &mocks{
		messages: map[string]*msgdomain.Message{
			"msg-1": {ID: "msg-1", ChannelID: "chan-1", OrgID: "org-1", AuthorID: "user-author", Body: "hi"},
		},
		channels: map[string]*chandomain.Channel{
			"chan-1":   {ID: "chan-1", OrgID: "org-1", Name: "general", Type: chandomain.ChannelTypePublic},
			"chan-dm":  {ID: "chan-dm", OrgID: "org-1", Type: chandomain.ChannelTypeDirect},
			"chan-old": {ID: "chan-old", OrgID: "org-1", Name: "legacy", Type: chandomain.ChannelTypePublic, Archived: true},
		},
		participants: map[string]*dmdomain.Participant{
			"chan-dm:user-author": {ID: "p1", ChannelID: "chan-dm", UserID: "user-author"},
		},
		memberships: map[string]*memdomain.Membership{
			"user-author:org-1": {ID: "m1", UserID: "user-author", OrgID: "org-1", Role: memdomain.RoleMember},
			"user-admin:org-1":  {ID: "m2", UserID: "user-admin", OrgID: "org-1", Role: memdomain.RoleAdmin},
			"user-other:org-1":  {ID: "m3", UserID: "user-other", OrgID: "org-1", Role: memdomain.RoleMember},
		},
	}
}

func newPolicy(m *mocks) *Policy { return New(m, m, m, m) }

func actor(userID string) *authz.Actor { return &authz.Actor{UserID: userID} }

func TestCanCreate_PublicChannel(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanCreate(context.Background(), actor("user-other"), "chan-1"); err != nil {
		t.Fatalf("member post: %v", err)
	}
	if err := p.CanCreate(context.Background(), actor("outsider"), "chan-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("outsider post = %v, want unauthorized", err)
	}
}

func TestCanCreate_ArchivedChannelDenied(t *testing.T) {
	p := newPolicy(fixture())
	err := p.CanCreate(context.Background(), actor("user-other"), "chan-old")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("archived post = %v, want unauthorized", err)
	}
}

func TestCanCreate_DMRequiresParticipant(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanCreate(context.Background(), actor("user-author"), "chan-dm"); err != nil {
		t.Fatalf("participant post: %v", err)
	}
	// Org member who is not in the DM roster.
	err := p.CanCreate(context.Background(), actor("user-other"), "chan-dm")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("non-participant post = %v, want unauthorized", err)
	}
}

func TestCanUpdate_AuthorOnly(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanUpdate(context.Background(), actor("user-author"), "msg-1"); err != nil {
		t.Fatalf("author edit: %v", err)
	}
	// Org admin may delete but not edit someone else's message.
	if err := p.CanUpdate(context.Background(), actor("user-admin"), "msg-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("admin edit = %v, want unauthorized", err)
	}
}

func TestCanDelete_AuthorOrAdmin(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanDelete(context.Background(), actor("user-author"), "msg-1"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if err := p.CanDelete(context.Background(), actor("user-admin"), "msg-1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := p.CanDelete(context.Background(), actor("user-other"), "msg-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("member delete = %v, want unauthorized", err)
	}
}

func TestCanRead_MissingMessageCollapsesToUnauthorized(t *testing.T) {
	p := newPolicy(fixture())
	missing := p.CanRead(context.Background(), actor("user-other"), "msg-404")
	denied := p.CanRead(context.Background(), actor("outsider"), "msg-1")
	if !errors.Is(missing, authz.ErrUnauthorized) || !errors.Is(denied, authz.ErrUnauthorized) {
		t.Fatalf("missing=%v denied=%v, both must be unauthorized", missing, denied)
	}
	// Same error shape either way: no existence signal.
	var ue1, ue2 *authz.UnauthorizedError
	if !errors.As(missing, &ue1) || !errors.As(denied, &ue2) {
		t.Fatal("both failures must be *UnauthorizedError")
	}
	if ue1.Entity != ue2.Entity || ue1.Operation != ue2.Operation {
		t.Errorf("error shapes differ: %+v vs %+v", ue1, ue2)
	}
}
