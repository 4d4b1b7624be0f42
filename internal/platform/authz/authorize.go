package authz

import (
	"context"
)

// DecisionFunc evaluates whether the given actor may proceed. Returning
// (false, nil) denies; a non-nil error propagates unchanged to the caller
// (lookup and database failures are not authorization denials).
type DecisionFunc func(ctx context.Context, actor Actor) (bool, error)

// Authorize is the gate every policy method goes through:
//
//  1. A nil actor (or one without a user id) denies with ReasonNoActor.
//  2. decide runs with the actor; errors propagate unchanged.
//  3. true succeeds with no value; false denies with an *UnauthorizedError
//     carrying entity, operation, and actor id.
//
// Decision funcs report a missing resource as (false, nil), so not-found and
// denied are indistinguishable to the caller.
func Authorize(ctx context.Context, entity, operation string, actor *Actor, decide DecisionFunc) error {
	if actor == nil || actor.UserID == "" {
		return &UnauthorizedError{Entity: entity, Operation: operation, Reason: ReasonNoActor}
	}
	ok, err := decide(ctx, *actor)
	if err != nil {
		return err
	}
	if !ok {
		return &UnauthorizedError{Entity: entity, Operation: operation, ActorID: actor.UserID}
	}
	return nil
}
