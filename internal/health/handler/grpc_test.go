package handler

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error { return m.err }

type mockGuard struct {
	err error
}

func (m *mockGuard) HealthCheck(ctx context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	s := NewServer(&mockPinger{}, &mockGuard{})

	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("status = %v, want SERVING", resp.Status)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	s := NewServer(&mockPinger{err: errors.New("connection refused")}, &mockGuard{})

	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("status = %v, want NOT_SERVING", resp.Status)
	}
}

func TestCheck_GuardDown(t *testing.T) {
	s := NewServer(&mockPinger{}, &mockGuard{err: errors.New("compile failed")})

	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("status = %v, want NOT_SERVING", resp.Status)
	}
}

func TestCheck_NilDependenciesSkipped(t *testing.T) {
	s := NewServer(nil, nil)

	resp, err := s.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("status = %v, want SERVING", resp.Status)
	}
}

func TestWatch_Unimplemented(t *testing.T) {
	s := NewServer(nil, nil)

	err := s.Watch(&grpc_health_v1.HealthCheckRequest{}, nil)
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("Watch() code = %v, want Unimplemented", status.Code(err))
	}
}
