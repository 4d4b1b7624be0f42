package authz

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"team-chat-platform/backend/internal/membership/domain"
)

func TestAuthorize_Allow(t *testing.T) {
	actor := &Actor{UserID: "user-1"}
	err := Authorize(context.Background(), "bot", "read", actor, func(ctx context.Context, a Actor) (bool, error) {
		if a.UserID != "user-1" {
			t.Errorf("decide actor = %q, want %q", a.UserID, "user-1")
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
}

func TestAuthorize_Deny(t *testing.T) {
	actor := &Actor{UserID: "user-1"}
	err := Authorize(context.Background(), "bot", "update", actor, func(ctx context.Context, a Actor) (bool, error) {
		return false, nil
	})
	if err == nil {
		t.Fatal("expected denial")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error does not unwrap to ErrUnauthorized: %v", err)
	}
	var ue *UnauthorizedError
	if !errors.As(err, &ue) {
		t.Fatalf("error is not *UnauthorizedError: %v", err)
	}
	if ue.Entity != "bot" || ue.Operation != "update" || ue.ActorID != "user-1" {
		t.Errorf("UnauthorizedError = %+v, want bot/update/user-1", ue)
	}
}

func TestAuthorize_NoActor(t *testing.T) {
	called := false
	err := Authorize(context.Background(), "bot", "read", nil, func(ctx context.Context, a Actor) (bool, error) {
		called = true
		return true, nil
	})
	if err == nil {
		t.Fatal("expected denial with no actor")
	}
	if called {
		t.Error("decide must not run without an actor")
	}
	var ue *UnauthorizedError
	if !errors.As(err, &ue) {
		t.Fatalf("error is not *UnauthorizedError: %v", err)
	}
	if ue.Reason != ReasonNoActor {
		t.Errorf("reason = %q, want %q", ue.Reason, ReasonNoActor)
	}
}

func TestAuthorize_EmptyActorID(t *testing.T) {
	err := Authorize(context.Background(), "bot", "read", &Actor{}, func(ctx context.Context, a Actor) (bool, error) {
		return true, nil
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected denial for actor without user id, got %v", err)
	}
}

func TestAuthorize_DecideErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	actor := &Actor{UserID: "user-1"}
	err := Authorize(context.Background(), "bot", "read", actor, func(ctx context.Context, a Actor) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want propagated %v", err, boom)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("lookup failure must not be reported as a denial")
	}
}

func TestStatusError_Mapping(t *testing.T) {
	denied := Authorize(context.Background(), "channel", "delete", &Actor{UserID: "u1"}, func(ctx context.Context, a Actor) (bool, error) {
		return false, nil
	})
	st, _ := status.FromError(StatusError(denied))
	if st.Code() != codes.PermissionDenied {
		t.Errorf("denied code = %v, want %v", st.Code(), codes.PermissionDenied)
	}

	noActor := Authorize(context.Background(), "channel", "delete", nil, nil)
	st, _ = status.FromError(StatusError(noActor))
	if st.Code() != codes.Unauthenticated {
		t.Errorf("no-actor code = %v, want %v", st.Code(), codes.Unauthenticated)
	}

	st, _ = status.FromError(StatusError(errors.New("db down")))
	if st.Code() != codes.Internal {
		t.Errorf("lookup failure code = %v, want %v", st.Code(), codes.Internal)
	}

	if StatusError(nil) != nil {
		t.Error("StatusError(nil) must be nil")
	}
}

// mockMembershipGetter implements MembershipGetter for tests.
type mockMembershipGetter struct {
	memberships map[string]*domain.Membership
	err         error
}

func (m *mockMembershipGetter) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.memberships[userID+":"+orgID], nil
}

func TestIsMember(t *testing.T) {
	getter := &mockMembershipGetter{
		memberships: map[string]*domain.Membership{
			"user-1:org-1": {ID: "m1", UserID: "user-1", OrgID: "org-1", Role: domain.RoleMember},
		},
	}

	ok, err := IsMember(context.Background(), getter, "org-1", "user-1")
	if err != nil || !ok {
		t.Errorf("IsMember(org-1, user-1) = %v, %v; want true, nil", ok, err)
	}
	ok, err = IsMember(context.Background(), getter, "org-2", "user-1")
	if err != nil || ok {
		t.Errorf("IsMember(org-2, user-1) = %v, %v; want false, nil", ok, err)
	}
	ok, err = IsMember(context.Background(), getter, "", "user-1")
	if err != nil || ok {
		t.Errorf("IsMember with empty org = %v, %v; want false, nil", ok, err)
	}
}

func TestIsAdminOrOwner(t *testing.T) {
	getter := &mockMembershipGetter{
		memberships: map[string]*domain.Membership{
			"user-1:org-1": {ID: "m1", UserID: "user-1", OrgID: "org-1", Role: domain.RoleOwner},
			"user-2:org-1": {ID: "m2", UserID: "user-2", OrgID: "org-1", Role: domain.RoleAdmin},
			"user-3:org-1": {ID: "m3", UserID: "user-3", OrgID: "org-1", Role: domain.RoleMember},
		},
	}

	for _, tc := range []struct {
		userID string
		want   bool
	}{
		{"user-1", true},
		{"user-2", true},
		{"user-3", false},
		{"user-4", false},
	} {
		ok, err := IsAdminOrOwner(context.Background(), getter, "org-1", tc.userID)
		if err != nil {
			t.Fatalf("IsAdminOrOwner(%s): %v", tc.userID, err)
		}
		if ok != tc.want {
			t.Errorf("IsAdminOrOwner(org-1, %s) = %v, want %v", tc.userID, ok, tc.want)
		}
	}
}

func TestIsAdminOrOwner_LookupError(t *testing.T) {
	boom := errors.New("db down")
	getter := &mockMembershipGetter{err: boom}
	_, err := IsAdminOrOwner(context.Background(), getter, "org-1", "user-1")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
