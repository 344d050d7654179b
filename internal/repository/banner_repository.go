package repository

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/models"

	"gorm.io/gorm"
)

// BannerRepository is the banner data access interface.
type BannerRepository interface {
	List(onlyActive bool) ([]models.Banner, error)
	GetByID(id uint) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id uint) error
}

// GormBannerRepository is the GORM implementation.
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates the repository.
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// List returns banners, optionally only active ones.
func (r *GormBannerRepository) List(onlyActive bool) ([]models.Banner, error) {
	query := r.db.Model(&models.Banner{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var banners []models.Banner
	if err := query.Order("sort_order DESC, id ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// GetByID fetches one banner; nil when absent.
func (r *GormBannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// Create inserts a banner.
func (r *GormBannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

// Update saves a banner.
func (r *GormBannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

// Delete removes a banner.
func (r *GormBannerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}
