package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository is the delivery data access interface.
type DeliveryRepository interface {
	ListByUser(userID uint, page, pageSize int) ([]models.Delivery, int64, error)
	GetByIDAndUser(id, userID uint) (*models.Delivery, error)
	Create(delivery *models.Delivery) error
	Update(delivery *models.Delivery) error
	Delete(id uint) error
}

// GormDeliveryRepository is the GORM implementation.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates the repository.
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// ListByUser returns a user's deliveries, newest first.
func (r *GormDeliveryRepository) ListByUser(userID uint, page, pageSize int) ([]models.Delivery, int64, error) {
	query := r.db.Model(&models.Delivery{}).Where("user_id = ?", userID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var deliveries []models.Delivery
	query = applyPagination(query, page, pageSize)
	if err := query.Order("created_at DESC").Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// GetByIDAndUser fetches one delivery scoped to its owner; nil when absent.
func (r *GormDeliveryRepository) GetByIDAndUser(id, userID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// Create inserts a delivery.
func (r *GormDeliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

// Update saves a delivery.
func (r *GormDeliveryRepository) Update(delivery *models.Delivery) error {
	return r.db.Save(delivery).Error
}

// Delete removes a delivery.
func (r *GormDeliveryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Delivery{}, id).Error
}
