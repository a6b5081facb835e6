package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/andino-pos/andino-pos/internal/shared"
)

// AuditCleanupJob prunes audit_logs entries past the retention window.
type AuditCleanupJob struct {
	Audit         *shared.AuditLogger
	Logger        *slog.Logger
	RetentionDays int
}

// NewAuditCleanupJob initialises the audit cleanup handler.
func NewAuditCleanupJob(audit *shared.AuditLogger, logger *slog.Logger, retentionDays int) *AuditCleanupJob {
	return &AuditCleanupJob{Audit: audit, Logger: logger, RetentionDays: retentionDays}
}

// Handle executes the cleanup.
func (j *AuditCleanupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Audit == nil {
		return errors.New("audit cleanup: handler not configured")
	}
	var payload AuditCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	days := payload.RetentionDays
	if days <= 0 {
		days = j.RetentionDays
	}
	if days <= 0 {
		days = 90
	}

	removed, err := j.Audit.Cleanup(ctx, time.Duration(days)*24*time.Hour)
	if err != nil {
		j.logger().Error("audit cleanup failed", slog.Any("error", err))
		return err
	}
	j.logger().Info("audit cleanup finished", slog.Int("retention_days", days), slog.Int64("removed", removed))
	return nil
}

func (j *AuditCleanupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
