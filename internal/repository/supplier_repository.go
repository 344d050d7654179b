package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// SupplierRepository is the supplier data access interface.
type SupplierRepository interface {
	List(filter SupplierListFilter) ([]models.Supplier, int64, error)
	GetByID(id uint) (*models.Supplier, error)
	Create(supplier *models.Supplier, categoryIDs []uint) error
	Update(supplier *models.Supplier, categoryIDs []uint) error
	Delete(id uint) error
	ListByCategory(categoryID uint) ([]SupplierCategoryAgg, error)
	UpdateFavouriteFlag(id uint, favourite bool) error
	WithTx(tx *gorm.DB) *GormSupplierRepository
}

// GormSupplierRepository is the GORM implementation.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates the repository.
func NewSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormSupplierRepository) WithTx(tx *gorm.DB) *GormSupplierRepository {
	if tx == nil {
		return r
	}
	return &GormSupplierRepository{db: tx}
}

// List returns suppliers with optional search/city/category filters.
func (r *GormSupplierRepository) List(filter SupplierListFilter) ([]models.Supplier, int64, error) {
	query := r.db.Model(&models.Supplier{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.CategoryID != 0 {
		query = query.Joins("JOIN supplier_categories sc ON sc.supplier_id = suppliers.id AND sc.category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []models.Supplier
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Categories").Order("suppliers.id ASC").Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}
	return suppliers, total, nil
}

// GetByID fetches one supplier with its categories; nil when absent.
func (r *GormSupplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.Preload("Categories").First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

// Create inserts a supplier and its category links.
func (r *GormSupplierRepository) Create(supplier *models.Supplier, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(supplier).Error; err != nil {
			return err
		}
		return replaceSupplierCategories(tx, supplier, categoryIDs)
	})
}

// Update saves a supplier and replaces its category links when given.
func (r *GormSupplierRepository) Update(supplier *models.Supplier, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(supplier).Error; err != nil {
			return err
		}
		if categoryIDs == nil {
			return nil
		}
		return replaceSupplierCategories(tx, supplier, categoryIDs)
	})
}

func replaceSupplierCategories(tx *gorm.DB, supplier *models.Supplier, categoryIDs []uint) error {
	if categoryIDs == nil {
		return nil
	}
	categories := make([]models.Category, 0, len(categoryIDs))
	if len(categoryIDs) > 0 {
		if err := tx.Find(&categories, categoryIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(supplier).Association("Categories").Replace(categories)
}

// Delete removes a supplier.
func (r *GormSupplierRepository) Delete(id uint) error {
	return r.db.Select("Categories").Delete(&models.Supplier{ID: id}).Error
}

// ListByCategory returns every supplier linked to the category, annotated
// with the count of distinct products it offers within that category and the
// minimum delivery days across its price rows for those products.
func (r *GormSupplierRepository) ListByCategory(categoryID uint) ([]SupplierCategoryAgg, error) {
	var rows []SupplierCategoryAgg
	err := r.db.Table("suppliers s").
		Select(`s.id AS supplier_id, s.name, s.city, s.logo, s.rating,
			COUNT(DISTINCT p.id) AS product_count,
			MIN(CASE WHEN p.id IS NOT NULL THEN sp.delivery_days END) AS min_delivery_days`).
		Joins("JOIN supplier_categories sc ON sc.supplier_id = s.id AND sc.category_id = ?", categoryID).
		Joins("LEFT JOIN supplier_prices sp ON sp.supplier_id = s.id").
		Joins("LEFT JOIN products p ON p.id = sp.product_id AND p.category_id = ?", categoryID).
		Group("s.id, s.name, s.city, s.logo, s.rating").
		Order("s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateFavouriteFlag writes the denormalized favourite flag.
func (r *GormSupplierRepository) UpdateFavouriteFlag(id uint, favourite bool) error {
	return r.db.Model(&models.Supplier{}).Where("id = ?", id).Update("is_favourite", favourite).Error
}
