package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository is the favorite data access interface.
type FavoriteRepository interface {
	ListByUser(userID uint) ([]models.Favorite, error)
	Get(userID, productID uint, supplierID *uint) (*models.Favorite, error)
	GetByUserAndProduct(userID, productID uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	Delete(id uint) error
	CountForProduct(productID uint) (int64, error)
	CountForSupplier(supplierID uint) (int64, error)
	ProductIDsWithFavorites() ([]uint, error)
	SupplierIDsWithFavorites() ([]uint, error)
	WithTx(tx *gorm.DB) *GormFavoriteRepository
}

// GormFavoriteRepository is the GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates the repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) *GormFavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// ListByUser returns a user's favorites with product/supplier preloaded.
func (r *GormFavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Product").Preload("Supplier").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Get fetches the exact (user, product, supplier) triple; nil when absent.
func (r *GormFavoriteRepository) Get(userID, productID uint, supplierID *uint) (*models.Favorite, error) {
	query := r.db.Where("user_id = ? AND product_id = ?", userID, productID)
	if supplierID == nil {
		query = query.Where("supplier_id IS NULL")
	} else {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	var favorite models.Favorite
	if err := query.First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// GetByUserAndProduct fetches any favorite of the product by the user,
// regardless of supplier; nil when absent.
func (r *GormFavoriteRepository) GetByUserAndProduct(userID, productID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// Create inserts a favorite row.
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// Delete removes a favorite row.
func (r *GormFavoriteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Favorite{}, id).Error
}

// CountForProduct counts favorite rows referencing the product, any user.
func (r *GormFavoriteRepository) CountForProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForSupplier counts favorite rows referencing the supplier, any user.
func (r *GormFavoriteRepository) CountForSupplier(supplierID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("supplier_id = ?", supplierID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ProductIDsWithFavorites returns the distinct products referenced by any
// favorite row. Used by the reconciliation loop.
func (r *GormFavoriteRepository) ProductIDsWithFavorites() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Favorite{}).Distinct("product_id").Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SupplierIDsWithFavorites returns the distinct suppliers referenced by any
// favorite row.
func (r *GormFavoriteRepository) SupplierIDsWithFavorites() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("supplier_id IS NOT NULL").
		Distinct("supplier_id").
		Pluck("supplier_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
