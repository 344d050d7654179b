package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// ProductService handles product CRUD and lookups.
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductService creates the service.
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// List returns products with filters and pagination.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.products.List(filter)
}

// Get returns one product with its category.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create inserts a product after checking article uniqueness and the
// category link.
func (s *ProductService) Create(product *models.Product) error {
	if product.Name == "" || product.Article == "" {
		return ErrInvalidInput
	}
	count, err := s.products.CountByArticle(product.Article, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrArticleExists
	}
	if err := s.checkCategory(product.CategoryID); err != nil {
		return err
	}
	return s.products.Create(product)
}

// Update saves a product with the same checks as Create.
func (s *ProductService) Update(product *models.Product) error {
	existing, err := s.products.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if product.Article != "" && product.Article != existing.Article {
		count, err := s.products.CountByArticle(product.Article, &product.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrArticleExists
		}
	}
	if err := s.checkCategory(product.CategoryID); err != nil {
		return err
	}
	product.CreatedAt = existing.CreatedAt
	product.IsFavorite = existing.IsFavorite
	return s.products.Update(product)
}

func (s *ProductService) checkCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categories.GetByID(*categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	existing, err := s.products.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	return s.products.Delete(id)
}
