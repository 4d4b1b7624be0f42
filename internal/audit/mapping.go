package audit

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"team-chat-platform/backend/internal/platform/authz"
)

// Decision values recorded on audit entries.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
	DecisionError = "error"
)

// DecisionFromError maps the outcome of a check to an audit decision and a
// short reason string. nil means the check allowed. Policy denials and gRPC
// PermissionDenied/Unauthenticated statuses map to deny; anything else is an
// infrastructure error.
func DecisionFromError(err error) (decision, reason string) {
	if err == nil {
		return DecisionAllow, ""
	}
	var uerr *authz.UnauthorizedError
	if errors.As(err, &uerr) {
		return DecisionDeny, uerr.Reason
	}
	if errors.Is(err, authz.ErrUnauthorized) {
		return DecisionDeny, ""
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.PermissionDenied, codes.Unauthenticated:
			return DecisionDeny, s.Message()
		}
	}
	return DecisionError, err.Error()
}

// ActionResource holds action and resource derived from a gRPC full method name.
type ActionResource struct {
	Action   string
	Resource string
}

// ParseFullMethod returns action and resource for a gRPC full method
// (e.g. /teamchat.channel.v1.ChannelService/GetChannel).
// Action is a verb: get, list, create, update, delete, or a lowercase method name for others.
// Resource is derived from the service name (e.g. ChannelService -> channel).
func ParseFullMethod(fullMethod string) ActionResource {
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 0 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	method := fullMethod[slash+1:]
	beforeSlash := fullMethod[:slash]
	dot := strings.LastIndex(beforeSlash, ".")
	if dot < 0 {
		return ActionResource{Action: strings.ToLower(method), Resource: "unknown"}
	}
	serviceName := beforeSlash[dot+1:]
	return ActionResource{Action: methodToAction(method), Resource: serviceToResource(serviceName)}
}

func serviceToResource(serviceName string) string {
	// ChannelService -> channel, OrganizationService -> organization
	s := strings.TrimSuffix(serviceName, "Service")
	if s == "" {
		return "unknown"
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

func methodToAction(method string) string {
	switch {
	case strings.HasPrefix(method, "Get") && method != "Get":
		return "get"
	case strings.HasPrefix(method, "List"):
		return "list"
	case strings.HasPrefix(method, "Create"):
		return "create"
	case strings.HasPrefix(method, "Update"):
		return "update"
	case strings.HasPrefix(method, "Delete"):
		return "delete"
	case strings.HasPrefix(method, "Archive"):
		return "archive"
	case strings.HasPrefix(method, "Pin"):
		return "pin"
	case strings.HasPrefix(method, "Unpin"):
		return "unpin"
	case strings.HasPrefix(method, "Install"):
		return "install"
	case strings.HasPrefix(method, "Uninstall"):
		return "uninstall"
	case strings.HasPrefix(method, "Invite"):
		return "invite"
	default:
		return strings.ToLower(method)
	}
}
