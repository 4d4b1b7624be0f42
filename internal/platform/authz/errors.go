package authz

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the sentinel every authorization failure unwraps to.
// Use errors.Is(err, authz.ErrUnauthorized) to detect denials.
var ErrUnauthorized = errors.New("unauthorized")

// ReasonNoActor marks denials caused by a missing authenticated actor.
const ReasonNoActor = "no actor"

// UnauthorizedError is the only error this package deliberately produces.
// It covers both rule failures and missing resources, so callers cannot tell
// whether a denied resource exists.
type UnauthorizedError struct {
	Entity    string
	Operation string
	ActorID   string
	Reason    string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s.%s: unauthorized (%s)", e.Entity, e.Operation, e.Reason)
	}
	if e.ActorID != "" {
		return fmt.Sprintf("%s.%s: unauthorized for user %s", e.Entity, e.Operation, e.ActorID)
	}
	return fmt.Sprintf("%s.%s: unauthorized", e.Entity, e.Operation)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
