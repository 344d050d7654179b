package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// CategoryService builds the category tree and handles category CRUD.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoryNode is one tree node annotated with its supplier count.
type CategoryNode struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	ParentID       *uint           `json:"parent_id,omitempty"`
	SortOrder      int             `json:"sort_order"`
	SuppliersCount int64           `json:"suppliers_count"`
	Children       []*CategoryNode `json:"children"`
}

// Tree returns the full category forest. Children are nested under their
// parents; a node whose parent row is missing is lifted to the root level so
// a broken link never hides a subtree.
func (s *CategoryService) Tree() ([]*CategoryNode, error) {
	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}
	counts, err := s.categories.SupplierCounts()
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &CategoryNode{
			ID:             c.ID,
			Name:           c.Name,
			ParentID:       c.ParentID,
			SortOrder:      c.SortOrder,
			SuppliersCount: counts[c.ID],
			Children:       []*CategoryNode{},
		}
	}

	roots := make([]*CategoryNode, 0, len(categories))
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots, nil
}

// Get returns one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create inserts a category after validating the parent link.
func (s *CategoryService) Create(category *models.Category) error {
	if category.Name == "" {
		return ErrInvalidInput
	}
	if category.ParentID != nil {
		parent, err := s.categories.GetByID(*category.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrCategoryNotFound
		}
	}
	return s.categories.Create(category)
}

// Update saves a category. A parent change is rejected when it would make the
// category an ancestor of itself.
func (s *CategoryService) Update(category *models.Category) error {
	existing, err := s.categories.GetByID(category.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}
	if category.ParentID != nil {
		if *category.ParentID == category.ID {
			return ErrCategoryCycle
		}
		if err := s.checkNoCycle(category.ID, *category.ParentID); err != nil {
			return err
		}
	}
	category.CreatedAt = existing.CreatedAt
	return s.categories.Update(category)
}

// checkNoCycle walks from the proposed parent to the root and fails when the
// chain reaches the category being updated or revisits a node.
func (s *CategoryService) checkNoCycle(categoryID, parentID uint) error {
	visited := map[uint]bool{categoryID: true}
	current := parentID
	for {
		if visited[current] {
			return ErrCategoryCycle
		}
		visited[current] = true
		node, err := s.categories.GetByID(current)
		if err != nil {
			return err
		}
		if node == nil {
			return ErrCategoryNotFound
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// Delete removes a category. Its children become roots and its products keep
// existing with a null category.
func (s *CategoryService) Delete(id uint) error {
	existing, err := s.categories.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(id)
}
