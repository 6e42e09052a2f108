package utils

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Audit sink for security relevant events. Every authorization refusal and
// every admin mutation produces exactly one entry; entries are never dropped
// silently, only degraded to stderr when the logger is not ready.

// AuditDenied records a refused operation with the attempted actor if known.
func AuditDenied(operation string, actorID uint, actorName string) {
	auditLog("denied", operation, actorID, actorName, nil)
}

// AuditAdminAction records a successful admin-surface mutation.
func AuditAdminAction(operation string, actorID uint, actorName string, targetID uint) {
	auditLog("ok", operation, actorID, actorName, []zap.Field{zap.Uint("target_id", targetID)})
}

func auditLog(outcome, operation string, actorID uint, actorName string, extra []zap.Field) {
	fields := []zap.Field{
		zap.String("audit_id", uuid.NewString()),
		zap.String("outcome", outcome),
		zap.String("operation", operation),
		zap.Uint("actor_id", actorID),
		zap.String("actor", actorName),
		zap.Time("at", time.Now()),
	}
	fields = append(fields, extra...)

	if Logger != nil {
		Logger.Named("audit").Warn("security event", fields...)
		return
	}
	fallback, _ := zap.NewProduction()
	if fallback != nil {
		fallback.Named("audit").Warn("security event", fields...)
	}
}
