package service

import (
	"time"

	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// applicationTransitions is the closed status machine: forward only, no
// skipping, nothing leaves completed.
var applicationTransitions = map[string][]string{
	constants.ApplicationStatusPending:    {constants.ApplicationStatusDelivering},
	constants.ApplicationStatusDelivering: {constants.ApplicationStatusCompleted},
	constants.ApplicationStatusCompleted:  {},
}

// ApplicationService bundles existing orders under shared payment and
// delivery metadata.
type ApplicationService struct {
	applications repository.ApplicationRepository
	orders       repository.OrderRepository
}

// NewApplicationService creates the service.
func NewApplicationService(applications repository.ApplicationRepository, orders repository.OrderRepository) *ApplicationService {
	return &ApplicationService{applications: applications, orders: orders}
}

// Create submits an application over the user's own orders. Every order id
// must resolve to an order owned by the submitter.
func (s *ApplicationService) Create(userID uint, orderIDs []uint, paymentMethod string, deliveryDate *time.Time, comment string) (*models.Application, error) {
	if !constants.PaymentMethodValid(paymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if len(orderIDs) == 0 {
		return nil, ErrInvalidInput
	}
	orders, err := s.orders.GetByIDs(orderIDs)
	if err != nil {
		return nil, err
	}
	if len(orders) != len(uniqueIDs(orderIDs)) {
		return nil, ErrOrderNotFound
	}
	for _, order := range orders {
		if order.UserID != userID {
			return nil, ErrOrderNotFound
		}
	}

	application := &models.Application{
		UserID:        userID,
		PaymentMethod: paymentMethod,
		Status:        constants.ApplicationStatusPending,
		DeliveryDate:  deliveryDate,
		Comment:       comment,
	}
	if err := s.applications.Create(application, orders); err != nil {
		return nil, err
	}
	return s.applications.GetByID(application.ID)
}

// Get returns one of the user's applications with its orders.
func (s *ApplicationService) Get(userID, applicationID uint) (*models.Application, error) {
	application, err := s.applications.GetByIDAndUser(applicationID, userID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	return application, nil
}

// GetAny returns an application regardless of owner, for the admin panel.
func (s *ApplicationService) GetAny(applicationID uint) (*models.Application, error) {
	application, err := s.applications.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	return application, nil
}

// ListByUser returns the user's applications.
func (s *ApplicationService) ListByUser(userID uint, page, pageSize int, status string) ([]models.Application, int64, error) {
	return s.applications.List(repository.ApplicationListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	})
}

// ListAll returns applications across users for the admin panel.
func (s *ApplicationService) ListAll(page, pageSize int, status string) ([]models.Application, int64, error) {
	return s.applications.List(repository.ApplicationListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
}

// UpdateMeta changes payment/delivery metadata on one of the user's pending
// applications. Status and the order set stay fixed here.
func (s *ApplicationService) UpdateMeta(userID, applicationID uint, paymentMethod string, deliveryDate *time.Time, comment string) (*models.Application, error) {
	if !constants.PaymentMethodValid(paymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	application, err := s.applications.GetByIDAndUser(applicationID, userID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	if application.Status != constants.ApplicationStatusPending {
		return nil, ErrInvalidStatusTransition
	}
	application.PaymentMethod = paymentMethod
	application.DeliveryDate = deliveryDate
	application.Comment = comment
	if err := s.applications.Update(application); err != nil {
		return nil, err
	}
	return s.applications.GetByID(applicationID)
}

// AdvanceStatus moves an application along pending -> delivering ->
// completed. Any other move is rejected.
func (s *ApplicationService) AdvanceStatus(applicationID uint, newStatus string) (*models.Application, error) {
	application, err := s.applications.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	if !transitionAllowed(applicationTransitions, application.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}
	if err := s.applications.UpdateStatus(applicationID, newStatus); err != nil {
		return nil, err
	}
	return s.applications.GetByID(applicationID)
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	for _, allowed := range table[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
