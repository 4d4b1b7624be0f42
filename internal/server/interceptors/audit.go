package interceptors

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"team-chat-platform/backend/internal/audit"
)

// AuditUnary returns a unary server interceptor that records an audit entry after each RPC
// via the given logger. skipMethods is the set of full method names to not audit (e.g.
// health checks). Logging is best-effort and never fails the RPC. Successful anonymous
// RPCs are not recorded; anonymous denials are (the logger files them under its
// sentinel org).
func AuditUnary(logger audit.AuditLogger, skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if logger == nil || skipMethods[info.FullMethod] {
			return resp, err
		}
		var orgID, userID string
		if actor, ok := ActorFromContext(ctx); ok && actor != nil {
			orgID = actor.OrgID
			userID = actor.UserID
		}
		if userID == "" && err == nil {
			return resp, err
		}
		ar := audit.ParseFullMethod(info.FullMethod)
		logger.LogDecision(ctx, orgID, userID, ar.Resource, ar.Action, err)
		return resp, err
	}
}

// ClientIP returns the client IP from gRPC metadata (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				if i := strings.Index(s, ","); i > 0 {
					s = strings.TrimSpace(s[:i])
				}
				return s
			}
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}
