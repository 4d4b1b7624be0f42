package authz

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusError maps an authorization result onto a gRPC status for the
// transport boundary. Denials become a generic PermissionDenied (never
// revealing whether the resource exists); a missing actor becomes
// Unauthenticated; anything else is an Internal lookup failure.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		if ue.Reason == ReasonNoActor {
			return status.Error(codes.Unauthenticated, "authentication required")
		}
		return status.Error(codes.PermissionDenied, "not authorized")
	}
	return status.Error(codes.Internal, "authorization check failed")
}
