package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"

	"gorm.io/gorm"
)

// CartService manages the per-user cart. Each user owns exactly one cart,
// created lazily on first access.
type CartService struct {
	db       *gorm.DB
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService creates the service.
func NewCartService(db *gorm.DB, carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{db: db, carts: carts, products: products}
}

// CartView is the cart with its lines resolved.
type CartView struct {
	ID    uint              `json:"id"`
	Items []models.CartItem `json:"items"`
}

// Get returns the user's cart, creating an empty one on first call.
func (s *CartService) Get(userID uint) (*CartView, error) {
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	items, err := s.carts.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return &CartView{ID: cart.ID, Items: items}, nil
}

// AddItem puts a product in the cart. Adding a product already present
// increases the line quantity instead of creating a second line.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.carts.WithTx(tx)
		item, err := cartRepo.GetItem(cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return cartRepo.CreateItem(&models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			})
		}
		return cartRepo.UpdateItemQuantity(item.ID, item.Quantity+quantity)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// SetItemQuantity overwrites a line quantity.
func (s *CartService) SetItemQuantity(userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	item, err := s.carts.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.carts.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// RemoveItem drops a line from the cart.
func (s *CartService) RemoveItem(userID, productID uint) error {
	cart, err := s.getOrCreate(userID)
	if err != nil {
		return err
	}
	item, err := s.carts.GetItem(cart.ID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	return s.carts.DeleteItem(item.ID)
}

func (s *CartService) getOrCreate(userID uint) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{UserID: userID}
	if err := s.carts.Create(cart); err != nil {
		// lost a create race: the other writer's cart is the one to use
		existing, getErr := s.carts.GetByUser(userID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return cart, nil
}
