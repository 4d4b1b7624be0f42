// Package handler implements the standard gRPC health service for
// readiness/liveness probes.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Pinger checks database connectivity (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// GuardChecker checks that the guardrail engine can compile and evaluate
// its default module (e.g. the OPA guard).
type GuardChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server implements grpc.health.v1.Health. Readiness covers the database
// and the guardrail engine; either may be nil to skip that check.
type Server struct {
	grpc_health_v1.UnimplementedHealthServer
	db    Pinger
	guard GuardChecker
}

// NewServer returns a health server over the given dependencies.
func NewServer(db Pinger, guard GuardChecker) *Server {
	return &Server{db: db, guard: guard}
}

// Check reports SERVING when all configured dependencies are reachable.
func (s *Server) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
		}
	}
	if s.guard != nil {
		if err := s.guard.HealthCheck(ctx); err != nil {
			return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
		}
	}
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

// Watch is not supported; probes use Check.
func (s *Server) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	return status.Error(codes.Unimplemented, "method Watch not implemented")
}
