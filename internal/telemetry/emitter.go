package telemetry

import (
	"context"

	"team-chat-platform/backend/internal/telemetry/domain"
)

// EventEmitter emits platform events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.Event) error
}
