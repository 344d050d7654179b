package service

import (
	"context"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// SupplierPriceService manages the supplier-product price rows.
type SupplierPriceService struct {
	prices    repository.SupplierPriceRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	pricing   *PricingService
}

// NewSupplierPriceService creates the service.
func NewSupplierPriceService(
	prices repository.SupplierPriceRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	pricing *PricingService,
) *SupplierPriceService {
	return &SupplierPriceService{
		prices:    prices,
		suppliers: suppliers,
		products:  products,
		pricing:   pricing,
	}
}

// List returns price rows with pagination.
func (s *SupplierPriceService) List(page, pageSize int) ([]models.SupplierPrice, int64, error) {
	return s.prices.List(page, pageSize)
}

// Get returns one price row.
func (s *SupplierPriceService) Get(id uint) (*models.SupplierPrice, error) {
	price, err := s.prices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, ErrPriceNotFound
	}
	return price, nil
}

// Create inserts a price row. The (supplier, product) pair must be unique
// and both sides must exist.
func (s *SupplierPriceService) Create(ctx context.Context, price *models.SupplierPrice) error {
	if price.Price.IsNegative() || price.DeliveryDays < 0 {
		return ErrInvalidInput
	}
	supplier, err := s.suppliers.GetByID(price.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}
	product, err := s.products.GetByID(price.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	existing, err := s.prices.GetBySupplierAndProduct(price.SupplierID, price.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrPriceExists
	}
	if err := s.prices.Create(price); err != nil {
		return err
	}
	s.pricing.InvalidateCaches(ctx)
	return nil
}

// Update saves a price row. The supplier/product pair is fixed after
// creation; only price and delivery terms change.
func (s *SupplierPriceService) Update(ctx context.Context, id uint, priceValue models.Money, deliveryDays int, deliveryLabel string) (*models.SupplierPrice, error) {
	if priceValue.IsNegative() || deliveryDays < 0 {
		return nil, ErrInvalidInput
	}
	existing, err := s.prices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPriceNotFound
	}
	existing.Price = priceValue
	existing.DeliveryDays = deliveryDays
	existing.DeliveryLabel = deliveryLabel
	if err := s.prices.Update(existing); err != nil {
		return nil, err
	}
	s.pricing.InvalidateCaches(ctx)
	return existing, nil
}

// Delete removes a price row.
func (s *SupplierPriceService) Delete(ctx context.Context, id uint) error {
	existing, err := s.prices.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPriceNotFound
	}
	if err := s.prices.Delete(id); err != nil {
		return err
	}
	s.pricing.InvalidateCaches(ctx)
	return nil
}
