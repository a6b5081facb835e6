package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLowStockScan is the task type for scanning the catalog for
	// products at or below the reorder threshold.
	TaskLowStockScan = "catalog:lowstock_scan"
	// TaskAuditCleanup is the task type for pruning old audit log entries.
	TaskAuditCleanup = "audit:cleanup"
)

// LowStockScanPayload parameterizes a low-stock scan. A non-positive
// threshold falls back to the worker's configured default.
type LowStockScanPayload struct {
	Threshold int `json:"threshold"`
}

// NewLowStockScanTask constructs an Asynq task.
func NewLowStockScanTask(payload LowStockScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, data), nil
}

// AuditCleanupPayload parameterizes an audit log cleanup run.
type AuditCleanupPayload struct {
	RetentionDays int `json:"retention_days"`
}

// NewAuditCleanupTask constructs an Asynq task.
func NewAuditCleanupTask(payload AuditCleanupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAuditCleanup, data), nil
}
