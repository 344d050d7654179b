package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository is the application data access interface.
type ApplicationRepository interface {
	Create(application *models.Application, orders []models.Order) error
	GetByID(id uint) (*models.Application, error)
	GetByIDAndUser(id, userID uint) (*models.Application, error)
	List(filter ApplicationListFilter) ([]models.Application, int64, error)
	Update(application *models.Application) error
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) *GormApplicationRepository
}

// GormApplicationRepository is the GORM implementation.
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates the repository.
func NewApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormApplicationRepository) WithTx(tx *gorm.DB) *GormApplicationRepository {
	if tx == nil {
		return r
	}
	return &GormApplicationRepository{db: tx}
}

// Create inserts an application and attaches the given orders in one
// transaction.
func (r *GormApplicationRepository) Create(application *models.Application, orders []models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}
		return tx.Model(application).Association("Orders").Append(orders)
	})
}

// GetByID fetches one application with its orders; nil when absent.
func (r *GormApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Orders").Preload("Orders.Supplier").Preload("Orders.Product").
		First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// GetByIDAndUser fetches one application scoped to its submitter.
func (r *GormApplicationRepository) GetByIDAndUser(id, userID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Orders").Preload("Orders.Supplier").Preload("Orders.Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// List returns applications, optionally scoped by user and status.
func (r *GormApplicationRepository) List(filter ApplicationListFilter) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var applications []models.Application
	query = applyPagination(query.Preload("Orders"), filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// Update saves mutable application fields.
func (r *GormApplicationRepository) Update(application *models.Application) error {
	return r.db.Omit("Orders", "CreatedAt").Save(application).Error
}

// UpdateStatus writes only the status column.
func (r *GormApplicationRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}
