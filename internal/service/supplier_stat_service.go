package service

import (
	"time"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// SupplierStatService maintains the per-supplier order roll-ups the worker
// rebuilds after each order.
type SupplierStatService struct {
	stats  repository.SupplierStatRepository
	orders repository.OrderRepository
}

// NewSupplierStatService creates the service.
func NewSupplierStatService(stats repository.SupplierStatRepository, orders repository.OrderRepository) *SupplierStatService {
	return &SupplierStatService{stats: stats, orders: orders}
}

// Recalc rebuilds one supplier's roll-up from its orders.
func (s *SupplierStatService) Recalc(supplierID uint) error {
	row, err := s.orders.StatsForSupplier(supplierID)
	if err != nil {
		return err
	}
	return s.stats.Upsert(&models.SupplierStat{
		SupplierID:  supplierID,
		TotalOrders: row.TotalOrders,
		TotalItems:  row.TotalItems,
		TotalAmount: row.TotalAmount,
		UpdatedAt:   time.Now(),
	})
}

// Get returns one supplier's roll-up; a supplier with no orders yet yields
// zeros.
func (s *SupplierStatService) Get(supplierID uint) (*models.SupplierStat, error) {
	stat, err := s.stats.GetBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return &models.SupplierStat{SupplierID: supplierID}, nil
	}
	return stat, nil
}

// List returns every supplier roll-up.
func (s *SupplierStatService) List() ([]models.SupplierStat, error) {
	return s.stats.List()
}
