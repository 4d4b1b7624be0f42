package authz

import (
	"context"

	"team-chat-platform/backend/internal/membership/domain"
)

// MembershipGetter returns a user's membership in an org, or (nil, nil) when
// none exists. The lookup is infrastructure and is not itself subject to a
// policy check; running it under the caller's identity would be circular.
type MembershipGetter interface {
	GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (*domain.Membership, error)
}

// IsMember reports whether userID has any membership in orgID. A missing
// membership is false, never an error; lookup failures are returned for the
// calling policy to propagate.
func IsMember(ctx context.Context, getter MembershipGetter, orgID, userID string) (bool, error) {
	if orgID == "" || userID == "" {
		return false, nil
	}
	m, err := getter.GetMembershipByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// IsAdminOrOwner reports whether userID holds role admin or owner in orgID.
// The two roles are equal rank here; policies that must tell them apart
// resolve the membership themselves.
func IsAdminOrOwner(ctx context.Context, getter MembershipGetter, orgID, userID string) (bool, error) {
	if orgID == "" || userID == "" {
		return false, nil
	}
	m, err := getter.GetMembershipByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}
	return m.Role == domain.RoleAdmin || m.Role == domain.RoleOwner, nil
}
