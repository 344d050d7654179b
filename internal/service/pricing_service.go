package service

import (
	"context"
	"time"

	"github.com/optomarket/optomarket-api/internal/cache"
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// PricingService serves the two aggregated storefront listings: suppliers
// within a category and products offered by a supplier. Both go through the
// redis cache when it is up.
type PricingService struct {
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	ttl        time.Duration
}

// NewPricingService creates the service.
func NewPricingService(
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	ttlSeconds int,
) *PricingService {
	if ttlSeconds <= 0 {
		ttlSeconds = 300
	}
	return &PricingService{
		suppliers:  suppliers,
		products:   products,
		categories: categories,
		ttl:        time.Duration(ttlSeconds) * time.Second,
	}
}

// SuppliersByCategory lists every supplier linked to the category with its
// product count and minimum delivery days. A category with linked suppliers
// but no priced products still lists them, with zero counts.
func (s *PricingService) SuppliersByCategory(ctx context.Context, categoryID uint) ([]repository.SupplierCategoryAgg, error) {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	key := cache.Key("pricing", "category", categoryID)
	var cached []repository.SupplierCategoryAgg
	if hit, err := cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("pricing_cache_read_failed", "key", key, "error", err)
	}

	rows, err := s.suppliers.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.SupplierCategoryAgg{}
	}
	if err := cache.SetJSON(ctx, key, rows, s.ttl); err != nil {
		logger.Warnw("pricing_cache_write_failed", "key", key, "error", err)
	}
	return rows, nil
}

// ProductsBySupplier lists every product the supplier offers with that
// supplier's price and delivery terms.
func (s *PricingService) ProductsBySupplier(ctx context.Context, supplierID uint) ([]repository.SupplierProductAgg, error) {
	supplier, err := s.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	key := cache.Key("pricing", "supplier", supplierID)
	var cached []repository.SupplierProductAgg
	if hit, err := cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("pricing_cache_read_failed", "key", key, "error", err)
	}

	rows, err := s.products.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.SupplierProductAgg{}
	}
	if err := cache.SetJSON(ctx, key, rows, s.ttl); err != nil {
		logger.Warnw("pricing_cache_write_failed", "key", key, "error", err)
	}
	return rows, nil
}

// InvalidateCaches drops every cached pricing listing. Called after any
// price row change.
func (s *PricingService) InvalidateCaches(ctx context.Context) {
	if err := cache.DeleteByPattern(ctx, cache.Key("pricing", "*")); err != nil {
		logger.Warnw("pricing_cache_invalidate_failed", "error", err)
	}
}
