package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// SupplierPriceRepository is the supplier price data access interface.
type SupplierPriceRepository interface {
	List(page, pageSize int) ([]models.SupplierPrice, int64, error)
	GetByID(id uint) (*models.SupplierPrice, error)
	GetBySupplierAndProduct(supplierID, productID uint) (*models.SupplierPrice, error)
	Create(price *models.SupplierPrice) error
	Update(price *models.SupplierPrice) error
	Delete(id uint) error
}

// GormSupplierPriceRepository is the GORM implementation.
type GormSupplierPriceRepository struct {
	db *gorm.DB
}

// NewSupplierPriceRepository creates the repository.
func NewSupplierPriceRepository(db *gorm.DB) *GormSupplierPriceRepository {
	return &GormSupplierPriceRepository{db: db}
}

// List returns price rows with supplier/product preloaded.
func (r *GormSupplierPriceRepository) List(page, pageSize int) ([]models.SupplierPrice, int64, error) {
	var total int64
	if err := r.db.Model(&models.SupplierPrice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var prices []models.SupplierPrice
	query := applyPagination(r.db.Preload("Supplier").Preload("Product"), page, pageSize)
	if err := query.Order("id ASC").Find(&prices).Error; err != nil {
		return nil, 0, err
	}
	return prices, total, nil
}

// GetByID fetches one price row; nil when absent.
func (r *GormSupplierPriceRepository) GetByID(id uint) (*models.SupplierPrice, error) {
	var price models.SupplierPrice
	if err := r.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// GetBySupplierAndProduct fetches the unique pair row; nil when the supplier
// does not offer the product.
func (r *GormSupplierPriceRepository) GetBySupplierAndProduct(supplierID, productID uint) (*models.SupplierPrice, error) {
	var price models.SupplierPrice
	err := r.db.Where("supplier_id = ? AND product_id = ?", supplierID, productID).First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// Create inserts a price row.
func (r *GormSupplierPriceRepository) Create(price *models.SupplierPrice) error {
	return r.db.Create(price).Error
}

// Update saves a price row.
func (r *GormSupplierPriceRepository) Update(price *models.SupplierPrice) error {
	return r.db.Save(price).Error
}

// Delete removes a price row.
func (r *GormSupplierPriceRepository) Delete(id uint) error {
	return r.db.Delete(&models.SupplierPrice{}, id).Error
}
