package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// SupplierService handles supplier CRUD and lookups.
type SupplierService struct {
	suppliers  repository.SupplierRepository
	categories repository.CategoryRepository
}

// NewSupplierService creates the service.
func NewSupplierService(suppliers repository.SupplierRepository, categories repository.CategoryRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers, categories: categories}
}

// List returns suppliers with filters and pagination.
func (s *SupplierService) List(filter repository.SupplierListFilter) ([]models.Supplier, int64, error) {
	return s.suppliers.List(filter)
}

// Get returns one supplier with its categories.
func (s *SupplierService) Get(id uint) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

// Create inserts a supplier and links the given categories.
func (s *SupplierService) Create(supplier *models.Supplier, categoryIDs []uint) error {
	if supplier.Name == "" {
		return ErrInvalidInput
	}
	if err := s.checkCategories(categoryIDs); err != nil {
		return err
	}
	return s.suppliers.Create(supplier, categoryIDs)
}

// Update saves a supplier; a non-nil categoryIDs replaces the links.
func (s *SupplierService) Update(supplier *models.Supplier, categoryIDs []uint) error {
	existing, err := s.suppliers.GetByID(supplier.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSupplierNotFound
	}
	if err := s.checkCategories(categoryIDs); err != nil {
		return err
	}
	supplier.CreatedAt = existing.CreatedAt
	supplier.IsFavourite = existing.IsFavourite
	return s.suppliers.Update(supplier, categoryIDs)
}

func (s *SupplierService) checkCategories(categoryIDs []uint) error {
	for _, id := range categoryIDs {
		category, err := s.categories.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}
	return nil
}

// Delete removes a supplier and its category links.
func (s *SupplierService) Delete(id uint) error {
	existing, err := s.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSupplierNotFound
	}
	return s.suppliers.Delete(id)
}
