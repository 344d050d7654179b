package service

import (
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/queue"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// OrderService creates and lists orders. The total is computed once at
// creation from the supplier's price row and never changes afterwards, even
// when the price row does.
type OrderService struct {
	orders    repository.OrderRepository
	prices    repository.SupplierPriceRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	producer  *queue.Client
}

// NewOrderService creates the service.
func NewOrderService(
	orders repository.OrderRepository,
	prices repository.SupplierPriceRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	producer *queue.Client,
) *OrderService {
	return &OrderService{orders: orders, prices: prices, suppliers: suppliers, products: products, producer: producer}
}

// Create places an order for (supplier, product, quantity). Both references
// must exist, and the supplier must actually offer the product; a missing
// price row rejects the order.
func (s *OrderService) Create(userID, supplierID, productID uint, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	supplier, err := s.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	price, err := s.prices.GetBySupplierAndProduct(supplierID, productID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, ErrPriceNotFound
	}

	order := &models.Order{
		UserID:     userID,
		SupplierID: supplierID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalCost:  price.Price.Mul(quantity),
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	s.producer.EnqueueSupplierStatsRecalc(supplierID)
	return order, nil
}

// Get returns one of the user's orders.
func (s *OrderService) Get(userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser returns the user's order history.
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orders.ListByUser(userID, page, pageSize)
}
