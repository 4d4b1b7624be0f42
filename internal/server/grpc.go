// Package server wires the gRPC server: service registration and the
// interceptor chain (auth, audit, telemetry).
package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"team-chat-platform/backend/internal/audit"
	healthhandler "team-chat-platform/backend/internal/health/handler"
	"team-chat-platform/backend/internal/platform/authz"
	"team-chat-platform/backend/internal/security"
	"team-chat-platform/backend/internal/server/interceptors"
	"team-chat-platform/backend/internal/telemetry/producer"
)

// healthMethods are never authenticated, audited, or emitted as telemetry.
var healthMethods = map[string]bool{
	"/grpc.health.v1.Health/Check": true,
	"/grpc.health.v1.Health/Watch": true,
}

// Deps holds the dependencies for the gRPC server and its interceptors.
type Deps struct {
	// Tokens validates access tokens for the auth interceptor. Required.
	Tokens *security.TokenProvider
	// Users resolves the token subject to a user. Required.
	Users interceptors.UserGetter
	// Memberships resolves the actor's role in its home org. Required.
	Memberships authz.MembershipGetter
	// AuditLogger records per-RPC audit entries. If nil, no RPCs are audited.
	AuditLogger audit.AuditLogger
	// Producer emits grpc_request telemetry events. If nil, no events are emitted.
	Producer producer.Producer
	// HealthPinger is used by the health service for readiness (e.g. *sql.DB). If nil, the DB check is skipped.
	HealthPinger healthhandler.Pinger
	// GuardChecker is used by the health service for readiness (e.g. the OPA guard). If nil, the guard check is skipped.
	GuardChecker healthhandler.GuardChecker
}

// New returns a gRPC server with the full interceptor chain and all
// services registered. Order matters: auth resolves the actor first so
// audit and telemetry can attribute the request.
func New(deps Deps) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{
		interceptors.AuthUnary(deps.Tokens, deps.Users, deps.Memberships, healthMethods),
	}
	if deps.AuditLogger != nil {
		chain = append(chain, interceptors.AuditUnary(deps.AuditLogger, healthMethods))
	}
	if deps.Producer != nil {
		chain = append(chain, interceptors.TelemetryUnary(deps.Producer, healthMethods))
	}

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(chain...),
	)
	RegisterServices(s, deps)
	return s
}

// RegisterServices registers all gRPC services with the given registrar.
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	grpc_health_v1.RegisterHealthServer(s, healthhandler.NewServer(deps.HealthPinger, deps.GuardChecker))
}
