package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"team-chat-platform/backend/internal/platform/authz"
	"team-chat-platform/backend/internal/security"
	userdomain "team-chat-platform/backend/internal/user/domain"
)

const bearerPrefix = "bearer "

// UserGetter loads a user by id, (nil, nil) when missing.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
}

// AuthUnary returns a unary server interceptor that validates the Bearer (access) token
// from gRPC metadata and puts the resolved actor in context for protected RPCs.
// The actor's role is re-resolved from the membership table, never trusted from the token.
// publicMethods is the set of full method names that do not require a Bearer token
// (e.g. the health service).
func AuthUnary(tokens *security.TokenProvider, users UserGetter, memberships authz.MembershipGetter, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		token := extractBearer(ctx)
		public := publicMethods[info.FullMethod]

		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		userID, orgID, err := tokens.ValidateAccess(token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		actor, err := resolveActor(ctx, users, memberships, userID, orgID)
		if err != nil {
			return nil, status.Error(codes.Internal, "resolve actor")
		}
		if actor == nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		ctx = WithActor(ctx, actor)
		return handler(ctx, req)
	}
}

// resolveActor builds the actor for a validated token. Returns (nil, nil)
// when the user no longer exists. A stale org claim (no membership) yields
// an actor with no home org rather than a rejection.
func resolveActor(ctx context.Context, users UserGetter, memberships authz.MembershipGetter, userID, orgID string) (*authz.Actor, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	actor := &authz.Actor{UserID: u.ID, Onboarded: u.Onboarded}
	if orgID == "" {
		return actor, nil
	}
	m, err := memberships.GetMembershipByUserAndOrg(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}
	if m != nil {
		actor.OrgID = m.OrgID
		actor.Role = m.Role
	}
	return actor, nil
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
