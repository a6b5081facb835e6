package catalog

import (
	"context"
	"log/slog"
)

// Service coordinates catalog reads and writes around the list cache.
type Service struct {
	repo   Repository
	cache  *ListCache
	logger *slog.Logger
}

// NewService builds Service. cache may be nil.
func NewService(repo Repository, cache *ListCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// List returns the catalog ordered by name, served through the cache.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.cache.Fetch(ctx, s.repo.List)
}

// Create inserts a product and drops the stale list.
func (s *Service) Create(ctx context.Context, product Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update rewrites the product addressed by its pre-edit sku.
func (s *Service) Update(ctx context.Context, originalSKU string, product Product) error {
	if err := s.repo.UpdateBySKU(ctx, originalSKU, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidate catalog cache", slog.Any("error", err))
	}
}
