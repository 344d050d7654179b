package service

import (
	"time"

	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

// deliveryTransitions is the delivery status machine. Cancellation is
// allowed until the shipment is delivered; delivered and cancelled are
// terminal.
var deliveryTransitions = map[string][]string{
	constants.DeliveryStatusPending:   {constants.DeliveryStatusInTransit, constants.DeliveryStatusCancelled},
	constants.DeliveryStatusInTransit: {constants.DeliveryStatusDelivered, constants.DeliveryStatusCancelled},
	constants.DeliveryStatusDelivered: {},
	constants.DeliveryStatusCancelled: {},
}

// DeliveryService manages user shipment requests.
type DeliveryService struct {
	deliveries repository.DeliveryRepository
}

// NewDeliveryService creates the service.
func NewDeliveryService(deliveries repository.DeliveryRepository) *DeliveryService {
	return &DeliveryService{deliveries: deliveries}
}

// List returns the user's deliveries.
func (s *DeliveryService) List(userID uint, page, pageSize int) ([]models.Delivery, int64, error) {
	return s.deliveries.ListByUser(userID, page, pageSize)
}

// Get returns one of the user's deliveries.
func (s *DeliveryService) Get(userID, deliveryID uint) (*models.Delivery, error) {
	delivery, err := s.deliveries.GetByIDAndUser(deliveryID, userID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}
	return delivery, nil
}

// Create registers a shipment request in pending status.
func (s *DeliveryService) Create(userID uint, address, contactNumber string, deliveryDate *time.Time) (*models.Delivery, error) {
	if address == "" || contactNumber == "" {
		return nil, ErrInvalidInput
	}
	delivery := &models.Delivery{
		UserID:        userID,
		Address:       address,
		ContactNumber: contactNumber,
		DeliveryDate:  deliveryDate,
		Status:        constants.DeliveryStatusPending,
	}
	if err := s.deliveries.Create(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// UpdateMeta changes address/contact/date while the shipment is still
// pending.
func (s *DeliveryService) UpdateMeta(userID, deliveryID uint, address, contactNumber string, deliveryDate *time.Time) (*models.Delivery, error) {
	delivery, err := s.Get(userID, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.Status != constants.DeliveryStatusPending {
		return nil, ErrInvalidStatusTransition
	}
	if address == "" || contactNumber == "" {
		return nil, ErrInvalidInput
	}
	delivery.Address = address
	delivery.ContactNumber = contactNumber
	delivery.DeliveryDate = deliveryDate
	if err := s.deliveries.Update(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// AdvanceStatus moves a delivery along its status machine.
func (s *DeliveryService) AdvanceStatus(userID, deliveryID uint, newStatus string) (*models.Delivery, error) {
	delivery, err := s.Get(userID, deliveryID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(deliveryTransitions, delivery.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}
	delivery.Status = newStatus
	if err := s.deliveries.Update(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

// Cancel marks a not-yet-delivered shipment cancelled.
func (s *DeliveryService) Cancel(userID, deliveryID uint) (*models.Delivery, error) {
	return s.AdvanceStatus(userID, deliveryID, constants.DeliveryStatusCancelled)
}
