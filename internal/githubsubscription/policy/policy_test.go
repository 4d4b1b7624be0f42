package policy

import (
	"context"
	"errors"
	"testing"

	chandomain "team-chat-platform/backend/internal/channel/domain"
	subdomain "team-chat-platform/backend/internal/githubsubscription/domain"
	memdomain "team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

type mocks struct {
	subs        map[string]*subdomain.Subscription
	channels    map[string]*chandomain.Channel
	memberships map[string]*memdomain.Membership
}

func (m *mocks) GetSubscriptionByID(ctx context.Context, id string) (*subdomain.Subscription, error) {
	return m.subs[id], nil
}

func (m *mocks) GetChannelByID(ctx context.Context, id string) (*chandomain.Channel, error) {
	return m.channels[id], nil
}

func (m *mocks) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*memdomain.Membership, error) {
	return m.memberships[userID+":"+orgID], nil
}

func fixture() *mocks {
	return &mocks{
		subs: map[string]*subdomain.Subscription{
			"sub-1": {ID: "sub-1", ChannelID: "chan-1", OrgID: "org-1", Repo: "acme/api", CreatedBy: "user-admin"},
		},
		channels: map[string]*chandomain.Channel{
			"chan-1": {ID: "chan-1", OrgID: "org-1", Name: "eng", Type: chandomain.ChannelTypePublic},
		},
		memberships: map[string]*memdomain.Membership{
			"user-owner:org-1":  {ID: "m1", UserID: "user-owner", OrgID: "org-1", Role: memdomain.RoleOwner},
			"user-admin:org-1":  {ID: "m2", UserID: "user-admin", OrgID: "org-1", Role: memdomain.RoleAdmin},
			"user-member:org-1": {ID: "m3", UserID: "user-member", OrgID: "org-1", Role: memdomain.RoleMember},
		},
	}
}

func newPolicy(m *mocks) *Policy { return New(m, m, m) }

func actor(userID string) *authz.Actor { return &authz.Actor{UserID: userID} }

func TestCanCreate_AdminOrOwner(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanCreate(context.Background(), actor("user-admin"), "chan-1"); err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if err := p.CanCreate(context.Background(), actor("user-owner"), "chan-1"); err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if err := p.CanCreate(context.Background(), actor("user-member"), "chan-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("member create = %v, want unauthorized", err)
	}
}

func TestCanUpdateDelete_AdminOnly(t *testing.T) {
	p := newPolicy(fixture())
	if err := p.CanUpdate(context.Background(), actor("user-admin"), "sub-1"); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if err := p.CanDelete(context.Background(), actor("user-member"), "sub-1"); !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("member delete = %v, want unauthorized", err)
	}
}

func TestCanRead_MissingSubscription(t *testing.T) {
	p := newPolicy(fixture())
	err := p.CanRead(context.Background(), actor("user-admin"), "sub-404")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("missing subscription = %v, want unauthorized", err)
	}
}

func TestCanCreate_MissingChannel(t *testing.T) {
	p := newPolicy(fixture())
	err := p.CanCreate(context.Background(), actor("user-admin"), "chan-404")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("missing channel = %v, want unauthorized", err)
	}
}
