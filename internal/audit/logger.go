package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"team-chat-platform/backend/internal/audit/domain"
	auditrepo "team-chat-platform/backend/internal/audit/repository"
)

// SentinelOrgID is the org_id used for audit events that have no org
// (e.g. a denied check where the actor carried no org).
const SentinelOrgID = "_system"

// IPExtractor returns the client IP from the request context (e.g. gRPC metadata or peer).
type IPExtractor func(context.Context) string

// AuditLogger records policy decisions. LogDecision is best-effort:
// failures are logged and do not affect the caller.
type AuditLogger interface {
	LogDecision(ctx context.Context, orgID, userID, entity, operation string, checkErr error)
}

// Logger implements AuditLogger using the audit repository and an optional IP extractor.
type Logger struct {
	repo        auditrepo.Repository
	ipExtractor IPExtractor
}

// NewLogger returns an AuditLogger that persists to repo and uses ipExtractor for client IP.
// ipExtractor may be nil; then IP is recorded as "unknown".
func NewLogger(repo auditrepo.Repository, ipExtractor IPExtractor) *Logger {
	return &Logger{repo: repo, ipExtractor: ipExtractor}
}

// LogDecision writes one audit entry for a policy check on entity/operation.
// checkErr is the error the policy returned, nil for an allow. Best-effort:
// persistence errors are logged and not returned.
func (l *Logger) LogDecision(ctx context.Context, orgID, userID, entity, operation string, checkErr error) {
	if l.repo == nil {
		return
	}
	ip := "unknown"
	if l.ipExtractor != nil {
		ip = l.ipExtractor(ctx)
	}
	if orgID == "" {
		orgID = SentinelOrgID
	}
	decision, reason := DecisionFromError(checkErr)
	entry := &domain.AuditLog{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		UserID:    userID,
		Action:    operation,
		Resource:  entity,
		Decision:  decision,
		IP:        ip,
		Metadata:  reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to log decision %s/%s: %v", entity, operation, err)
	}
}
