package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupplierStatRepository is the supplier statistics data access interface.
type SupplierStatRepository interface {
	Upsert(stat *models.SupplierStat) error
	GetBySupplier(supplierID uint) (*models.SupplierStat, error)
	List() ([]models.SupplierStat, error)
}

// GormSupplierStatRepository is the GORM implementation.
type GormSupplierStatRepository struct {
	db *gorm.DB
}

// NewSupplierStatRepository creates the repository.
func NewSupplierStatRepository(db *gorm.DB) *GormSupplierStatRepository {
	return &GormSupplierStatRepository{db: db}
}

// Upsert writes a stat row keyed by supplier.
func (r *GormSupplierStatRepository) Upsert(stat *models.SupplierStat) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "supplier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_orders", "total_items", "total_amount", "updated_at"}),
	}).Create(stat).Error
}

// GetBySupplier fetches one stat row; nil when absent.
func (r *GormSupplierStatRepository) GetBySupplier(supplierID uint) (*models.SupplierStat, error) {
	var stat models.SupplierStat
	if err := r.db.Where("supplier_id = ?", supplierID).First(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}

// List returns every stat row.
func (r *GormSupplierStatRepository) List() ([]models.SupplierStat, error) {
	var stats []models.SupplierStat
	if err := r.db.Order("supplier_id ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
