package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LowStockScanJob walks the catalog looking for products whose on-hand
// quantity fell to or below the threshold. Sale creation never floors
// quantities, so negative counts show up here too.
type LowStockScanJob struct {
	Pool      *pgxpool.Pool
	Logger    *slog.Logger
	Threshold int
}

// NewLowStockScanJob initialises the low-stock scan handler.
func NewLowStockScanJob(pool *pgxpool.Pool, logger *slog.Logger, threshold int) *LowStockScanJob {
	return &LowStockScanJob{Pool: pool, Logger: logger, Threshold: threshold}
}

// Handle executes the scan.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Pool == nil {
		return errors.New("low stock scan: handler not configured")
	}
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	threshold := payload.Threshold
	if threshold <= 0 {
		threshold = j.Threshold
	}

	logger := j.logger().With(slog.Int("threshold", threshold))

	rows, err := j.Pool.Query(ctx, `
		SELECT nombre, COALESCE(sku, ''), cantidad
		FROM products
		WHERE cantidad <= $1
		ORDER BY cantidad ASC`, threshold)
	if err != nil {
		logger.Error("low stock scan failed", slog.Any("error", err))
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var (
			name string
			sku  string
			qty  int
		)
		if err := rows.Scan(&name, &sku, &qty); err != nil {
			return err
		}
		count++
		logger.Warn("product low on stock",
			slog.String("nombre", name),
			slog.String("sku", sku),
			slog.Int("cantidad", qty),
		)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.Info("low stock scan finished", slog.Int("flagged", count))
	return nil
}

func (j *LowStockScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
