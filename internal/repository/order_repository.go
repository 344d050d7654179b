package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// OrderStatsRow aggregates a supplier's orders.
type OrderStatsRow struct {
	TotalOrders int64
	TotalItems  int64
	TotalAmount models.Money
}

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDs(ids []uint) ([]models.Order, error)
	ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error)
	StatsForSupplier(supplierID uint) (OrderStatsRow, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID fetches one order; nil when absent.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Supplier").Preload("Product").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDs fetches the orders matching the ids; missing ids are simply
// absent from the result.
func (r *GormOrderRepository) GetByIDs(ids []uint) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []models.Order
	if err := r.db.Find(&orders, ids).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser returns a user's orders, newest first.
func (r *GormOrderRepository) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	query = applyPagination(query.Preload("Supplier").Preload("Product"), page, pageSize)
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// StatsForSupplier aggregates order count, item count and amount for one
// supplier.
func (r *GormOrderRepository) StatsForSupplier(supplierID uint) (OrderStatsRow, error) {
	var row struct {
		TotalOrders int64
		TotalItems  *int64
		TotalAmount models.Money
	}
	err := r.db.Model(&models.Order{}).
		Select("COUNT(id) AS total_orders, SUM(quantity) AS total_items, COALESCE(SUM(total_cost), 0) AS total_amount").
		Where("supplier_id = ?", supplierID).
		Scan(&row).Error
	if err != nil {
		return OrderStatsRow{}, err
	}
	stats := OrderStatsRow{
		TotalOrders: row.TotalOrders,
		TotalAmount: row.TotalAmount,
	}
	if row.TotalItems != nil {
		stats.TotalItems = *row.TotalItems
	}
	return stats, nil
}
