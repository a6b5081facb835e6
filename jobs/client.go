package jobs

import (
	"context"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks from the API process.
type Client struct {
	client *asynq.Client
}

// NewClient constructs the enqueuing client.
func NewClient(opts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(opts)}
}

// EnqueueLowStockScan schedules a catalog scan with the worker's default
// threshold. Called after a committed sale, so duplicates are harmless.
func (c *Client) EnqueueLowStockScan(ctx context.Context) error {
	task, err := NewLowStockScanTask(LowStockScanPayload{})
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
	return err
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
