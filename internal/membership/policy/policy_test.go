package policy

import (
	"context"
	"errors"
	"testing"

	"team-chat-platform/backend/internal/membership/domain"
	"team-chat-platform/backend/internal/platform/authz"
)

// mockStore implements Store for tests.
type mockStore struct {
	byID   map[string]*domain.Membership
	err    error
	owners map[string]int64
}

func (m *mockStore) GetMembershipByID(ctx context.Context, id string) (*domain.Membership, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byID[id], nil
}

func (m *mockStore) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, mem := range m.byID {
		if mem.UserID == userID && mem.OrgID == orgID {
			return mem, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CountOwnersByOrg(ctx context.Context, orgID string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.owners[orgID], nil
}

func testStore() *mockStore {
	return &mockStore{
		byID: map[string]*domain.Membership{
			"m-owner":  {ID: "m-owner", UserID: "user-owner", OrgID: "org-1", Role: domain.RoleOwner},
			"m-admin":  {ID: "m-admin", UserID: "user-admin", OrgID: "org-1", Role: domain.RoleAdmin},
			"m-member": {ID: "m-member", UserID: "user-member", OrgID: "org-1", Role: domain.RoleMember},
		},
		owners: map[string]int64{"org-1": 1},
	}
}

func actor(userID string) *authz.Actor {
	return &authz.Actor{UserID: userID}
}

func TestCanCreate_AdminAllowed(t *testing.T) {
	p := New(testStore())
	if err := p.CanCreate(context.Background(), actor("user-admin"), "org-1"); err != nil {
		t.Fatalf("CanCreate admin: %v", err)
	}
}

func TestCanCreate_MemberDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanCreate(context.Background(), actor("user-member"), "org-1")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("CanCreate member = %v, want unauthorized", err)
	}
}

func TestCanCreate_OtherOrgDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanCreate(context.Background(), actor("user-admin"), "org-2")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("CanCreate foreign org = %v, want unauthorized", err)
	}
}

func TestCanUpdateRole_LastOwnerDemotionDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanUpdateRole(context.Background(), actor("user-admin"), "m-owner", domain.RoleMember)
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("demoting last owner = %v, want unauthorized", err)
	}
}

func TestCanUpdateRole_OwnerDemotionAllowedWhenNotLast(t *testing.T) {
	s := testStore()
	s.owners["org-1"] = 2
	p := New(s)
	if err := p.CanUpdateRole(context.Background(), actor("user-admin"), "m-owner", domain.RoleMember); err != nil {
		t.Fatalf("demoting non-last owner: %v", err)
	}
}

func TestCanUpdateRole_MemberDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanUpdateRole(context.Background(), actor("user-member"), "m-member", domain.RoleAdmin)
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("member changing roles = %v, want unauthorized", err)
	}
}

func TestCanUpdateRole_MissingMembershipCollapsesToUnauthorized(t *testing.T) {
	p := New(testStore())
	err := p.CanUpdateRole(context.Background(), actor("user-admin"), "m-missing", domain.RoleMember)
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("missing membership = %v, want unauthorized", err)
	}
}

func TestCanDelete_SelfLeaveAllowed(t *testing.T) {
	p := New(testStore())
	if err := p.CanDelete(context.Background(), actor("user-member"), "m-member"); err != nil {
		t.Fatalf("self leave: %v", err)
	}
}

func TestCanDelete_AdminRemovesMember(t *testing.T) {
	p := New(testStore())
	if err := p.CanDelete(context.Background(), actor("user-admin"), "m-member"); err != nil {
		t.Fatalf("admin remove: %v", err)
	}
}

func TestCanDelete_MemberRemovingOtherDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanDelete(context.Background(), actor("user-member"), "m-admin")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("member removing admin = %v, want unauthorized", err)
	}
}

func TestCanDelete_LastOwnerDenied(t *testing.T) {
	p := New(testStore())
	err := p.CanDelete(context.Background(), actor("user-owner"), "m-owner")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("last owner leaving = %v, want unauthorized", err)
	}
}

func TestCanDelete_NoActor(t *testing.T) {
	p := New(testStore())
	err := p.CanDelete(context.Background(), nil, "m-member")
	if !errors.Is(err, authz.ErrUnauthorized) {
		t.Fatalf("no actor = %v, want unauthorized", err)
	}
}

func TestCanDelete_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	p := New(&mockStore{err: boom})
	err := p.CanDelete(context.Background(), actor("user-admin"), "m-member")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
