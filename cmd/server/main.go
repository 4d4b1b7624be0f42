// Server runs the team-chat gRPC API. Required env: DATABASE_URL, GRPC_ADDR,
// JWT_PRIVATE_KEY, JWT_PUBLIC_KEY. Optional: OTEL_EXPORTER_OTLP_ENDPOINT for
// traces/metrics/logs, KAFKA_BROKERS for telemetry events.
package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-chat-platform/backend/internal/audit"
	auditrepo "team-chat-platform/backend/internal/audit/repository"
	"team-chat-platform/backend/internal/config"
	"team-chat-platform/backend/internal/db"
	guardrailengine "team-chat-platform/backend/internal/guardrail/engine"
	guardrailrepo "team-chat-platform/backend/internal/guardrail/repository"
	membershiprepo "team-chat-platform/backend/internal/membership/repository"
	"team-chat-platform/backend/internal/security"
	"team-chat-platform/backend/internal/server"
	"team-chat-platform/backend/internal/server/interceptors"
	"team-chat-platform/backend/internal/telemetry"
	telemetrydomain "team-chat-platform/backend/internal/telemetry/domain"
	"team-chat-platform/backend/internal/telemetry/otel"
	"team-chat-platform/backend/internal/telemetry/producer"
	userrepo "team-chat-platform/backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "teamchat-server", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	privPEM, err := security.LoadPEM(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatalf("jwt private key: %v", err)
	}
	priv, err := security.ParsePrivateKey(string(privPEM))
	if err != nil {
		log.Fatalf("jwt private key: %v", err)
	}
	pubPEM, err := security.LoadPEM(cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	pub, err := security.ParsePublicKey(string(pubPEM))
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	tokens := security.NewTokenProvider(priv, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())

	users := userrepo.NewPostgresRepository(conn)
	memberships := membershiprepo.NewPostgresRepository(conn)
	auditLogger := audit.NewLogger(auditrepo.NewPostgresRepository(conn), interceptors.ClientIP)
	guard := guardrailengine.NewOPAGuard(guardrailrepo.NewPostgresRepository(conn))

	var kafkaProducer *producer.KafkaProducer
	if brokers := cfg.TelemetryKafkaBrokersList(); len(brokers) > 0 {
		kafkaProducer, err = producer.NewKafkaProducer(brokers, cfg.TelemetryKafkaTopic)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		defer kafkaProducer.Close()
	}

	deps := server.Deps{
		Tokens:       tokens,
		Users:        users,
		Memberships:  memberships,
		AuditLogger:  auditLogger,
		HealthPinger: conn,
		GuardChecker: guard,
	}
	if kafkaProducer != nil {
		deps.Producer = kafkaProducer
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	s := server.New(deps)

	emitter := otel.NewEventEmitter(providers.LoggerProvider)
	telemetry.EmitAsync(emitter, ctx, &telemetrydomain.Event{
		EventType: "server_started",
		Source:    "server",
		CreatedAt: time.Now().UTC(),
	})

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	s.GracefulStop()
	// Give in-flight async telemetry emits a chance to complete.
	time.Sleep(telemetry.ShutdownDrainDuration)
	log.Println("gRPC server stopped")
}
