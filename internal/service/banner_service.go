package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// BannerService handles promotional banners.
type BannerService struct {
	banners repository.BannerRepository
}

// NewBannerService creates the service.
func NewBannerService(banners repository.BannerRepository) *BannerService {
	return &BannerService{banners: banners}
}

// ListActive returns the banners shown on the storefront.
func (s *BannerService) ListActive() ([]models.Banner, error) {
	return s.banners.List(true)
}

// ListAll returns every banner for the admin panel.
func (s *BannerService) ListAll() ([]models.Banner, error) {
	return s.banners.List(false)
}

// Get returns one banner.
func (s *BannerService) Get(id uint) (*models.Banner, error) {
	banner, err := s.banners.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}
	return banner, nil
}

// Create inserts a banner.
func (s *BannerService) Create(banner *models.Banner) error {
	if banner.Title == "" {
		return ErrInvalidInput
	}
	return s.banners.Create(banner)
}

// Update saves a banner.
func (s *BannerService) Update(banner *models.Banner) error {
	existing, err := s.banners.GetByID(banner.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBannerNotFound
	}
	banner.CreatedAt = existing.CreatedAt
	return s.banners.Update(banner)
}

// Delete removes a banner.
func (s *BannerService) Delete(id uint) error {
	existing, err := s.banners.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBannerNotFound
	}
	return s.banners.Delete(id)
}
