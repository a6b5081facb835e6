package sales

import (
	"context"
	"log/slog"

	"github.com/andino-pos/andino-pos/internal/shared"
)

// AuditPort abstracts audit logging functionality.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// CachePort invalidates the catalog list cache after stock mutations.
type CachePort interface {
	Invalidate(ctx context.Context) error
}

// EnqueuerPort schedules background work after a committed sale.
type EnqueuerPort interface {
	EnqueueLowStockScan(ctx context.Context) error
}

// Service coordinates the sale creation and annulment workflows. Each
// workflow runs as a single transaction: on any failure every write rolls
// back, so there is never a partial stock decrement or an orphan sale row.
type Service struct {
	repo    Repository
	audit   AuditPort
	cache   CachePort
	enqueue EnqueuerPort
	logger  *slog.Logger
}

// NewService builds Service. audit, cache and enqueue are optional.
func NewService(repo Repository, audit AuditPort, cache CachePort, enqueue EnqueuerPort, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, audit: audit, cache: cache, enqueue: enqueue, logger: logger}
}

// CreateSaleInput carries the already-validated sale submission. Item
// quantities are positive by contract; the boundary enforces that.
type CreateSaleInput struct {
	CustomerName    string
	CustomerContact string
	CustomerTaxID   string
	Items           []Item
	Total           float64
}

// Create records a sale and decrements stock for every line item as one
// atomic unit, returning the generated saleId.
func (s *Service) Create(ctx context.Context, input CreateSaleInput) (string, error) {
	if len(input.Items) == 0 {
		return "", ErrNoItems
	}

	var saleID string
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if err := repo.LockSaleSequence(ctx); err != nil {
			return err
		}
		last, err := repo.LastSaleID(ctx)
		if err != nil {
			return err
		}
		saleID = NextSaleID(last)

		sale := Sale{
			SaleID:          saleID,
			CustomerName:    input.CustomerName,
			CustomerContact: input.CustomerContact,
			CustomerTaxID:   input.CustomerTaxID,
			Total:           input.Total,
			Items:           input.Items,
			Status:          StatusCompleted,
		}
		if _, err := repo.Insert(ctx, sale); err != nil {
			return err
		}

		for _, item := range input.Items {
			if err := repo.AdjustStock(ctx, item.SKU, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.afterStockChange(ctx, "sale:create", saleID, map[string]any{
		"total": input.Total,
		"items": len(input.Items),
	})
	if s.enqueue != nil {
		if err := s.enqueue.EnqueueLowStockScan(ctx); err != nil {
			s.logger.Warn("enqueue low stock scan", slog.Any("error", err))
		}
	}
	return saleID, nil
}

// Annul reverses a sale's stock effect and marks it voided. Restoration uses
// the item snapshot stored with the sale, never the current catalog state.
// Calling it twice for the same saleId fails with ErrNotFoundOrAnnulled and
// leaves stock untouched.
func (s *Service) Annul(ctx context.Context, saleID string) error {
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		sale, err := repo.GetOpenBySaleID(ctx, saleID)
		if err != nil {
			return err
		}
		for _, item := range sale.Items {
			if err := repo.AdjustStock(ctx, item.SKU, item.Quantity); err != nil {
				return err
			}
		}
		return repo.MarkAnnulled(ctx, saleID)
	})
	if err != nil {
		return err
	}

	s.afterStockChange(ctx, "sale:annul", saleID, nil)
	return nil
}

// List returns all sales, most recent first.
func (s *Service) List(ctx context.Context) ([]Sale, error) {
	return s.repo.List(ctx)
}

// afterStockChange runs the best-effort post-commit work: the workflow has
// already committed, so failures here are logged rather than surfaced.
func (s *Service) afterStockChange(ctx context.Context, action, saleID string, meta map[string]any) {
	if s.audit != nil {
		if err := s.audit.Record(ctx, shared.AuditLog{
			Action:   action,
			Entity:   "sale",
			EntityID: saleID,
			Meta:     meta,
		}); err != nil {
			s.logger.Warn("record audit log", slog.String("sale_id", saleID), slog.Any("error", err))
		}
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidate catalog cache", slog.Any("error", err))
		}
	}
}
