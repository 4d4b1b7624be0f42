package policy

import (
	"context"
	"errors"
	"testing"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	memdomain "team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

type mockChannels struct {
	byID map[string]*chandomain.Channel
	err  error
}

func (m *mockChannels) GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error) {
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

func fixture() (*mockChannels, *mockMemberships) {
	channels := &mockChannels{byID: map[string]*chandomain.Channel{
		"chan-1": {ID: "chan-1", OrgID: "org-1", Name: "general", Type: chandomain.ChannelTypePublic, CreatedBy: "user-member"},
	}}
	ms := &mockMemberships{byUserOrg: map[string]*memdomain.Membership{
		"user-admin:org-1":  {ID: "m1", UserID: "user-admin", OrgID: "org-1", Role: memdomain.RoleAdmin},
		"user-member:org-1": {ID: "m2", UserID: "user-member", OrgID: "org-1", Role: memdomain.RoleMember},
		"user-other:org-1":  {ID: "m3", UserID: "user-other", OrgID: "org-1", Role: memdomain.RoleMember},
	}}
	return channels, ms
}

func actor(userID string) *authz.Actor { return &authz.Actor{UserID: userID} }

func TestCanCreate(t *testing.T) {
	p := New(fixture())
	if err := p.CanCreate(context.Background(), actor("user-member"), "org-1"); err != nil {
		t.Fatalf("member create: %v", err)
	}
	if err := p.CanCreate(context.Background(), actor("user-member"), "org-2"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("foreign org create = %v, want unauthorized", err)
	}
}

func TestCanRead(t *testing.T) {
	p := New(fixture())
	if err := p.CanRead(context.Background(), actor("user-other"), "chan-1"); err != nil {
		t.Fatalf("org member read: %v", err)
	}
	if err := p.CanRead(context.Background(), actor("outsider"), "chan-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("outsider read = %v, want unauthorized", err)
	}
}

func TestCanRead_MissingChannelCollapsesToUnauthorized(t *testing.T) {
	p := New(fixture())
	err := p.CanRead(context.Background(), actor("user-admin"), "chan-missing")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("missing channel = %v, want unauthorized", err)
	}
	var ue *authz.UnauthorizedError
	if !errors.As(err, &ue) {
		t.Fatalf("error is not *UnauthorizedError: %v", err)
	}
}

func TestCanUpdate_CreatorAndAdmin(t *testing.T) {
	p := New(fixture())
	if err := p.CanUpdate(context.Background(), actor("user-member"), "chan-1"); err != nil {
		t.Fatalf("creator update: %v", err)
	}
	if err := p.CanUpdate(context.Background(), actor("user-admin"), "chan-1"); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if err := p.CanUpdate(context.Background(), actor("user-other"), "chan-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("plain member update = %v, want unauthorized", err)
	}
}

func TestCanArchive_AdminOnly(t *testing.T) {
	p := New(fixture())
	if err := p.CanArchive(context.Background(), actor("user-admin"), "chan-1"); err != nil {
		t.Fatalf("admin archive: %v", err)
	}
	// Creator status does not grant archive; it is an org-admin operation.
	if err := p.CanArchive(context.Background(), actor("user-member"), "chan-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("creator archive = %v, want unauthorized", err)
	}
}

func TestCanDelete_LookupErrorPropagates(t *testing.T) {
	channels, ms := fixture()
	boom := errors.New("db down")
	channels.err = boom
	p := New(channels, ms)
	if err := p.CanDelete(context.Background(), actor("user-admin"), "chan-1"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
