package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestApplicationBundlesOwnOrders(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	apps := NewApplicationService(repository.NewApplicationRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)

	first, err := orders.Create(1, supplier.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	second, err := orders.Create(1, supplier.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	application, err := apps.Create(1, []uint{first.ID, second.ID}, constants.PaymentMethodCash, nil, "call before delivery")
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	if application.Status != constants.ApplicationStatusPending {
		t.Fatalf("want pending, got %s", application.Status)
	}
	if len(application.Orders) != 2 {
		t.Fatalf("want 2 bundled orders, got %d", len(application.Orders))
	}
}

func TestApplicationRejectsForeignOrders(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	apps := NewApplicationService(repository.NewApplicationRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)

	foreign, err := orders.Create(2, supplier.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := apps.Create(1, []uint{foreign.ID}, constants.PaymentMethodCash, nil, ""); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
	if _, err := apps.Create(1, []uint{999}, constants.PaymentMethodCash, nil, ""); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order id: want ErrOrderNotFound, got %v", err)
	}
	if _, err := apps.Create(1, nil, constants.PaymentMethodCash, nil, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty order set: want ErrInvalidInput, got %v", err)
	}
	if _, err := apps.Create(1, []uint{1}, "card", nil, ""); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("want ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestApplicationStatusMachine(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	apps := NewApplicationService(repository.NewApplicationRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)
	order, err := orders.Create(1, supplier.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	application, err := apps.Create(1, []uint{order.ID}, constants.PaymentMethodOnline, nil, "")
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	// skipping a stage is rejected
	if _, err := apps.AdvanceStatus(application.ID, constants.ApplicationStatusCompleted); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("pending->completed: want ErrInvalidStatusTransition, got %v", err)
	}

	application, err = apps.AdvanceStatus(application.ID, constants.ApplicationStatusDelivering)
	if err != nil {
		t.Fatalf("pending->delivering: %v", err)
	}
	if application.Status != constants.ApplicationStatusDelivering {
		t.Fatalf("want delivering, got %s", application.Status)
	}

	application, err = apps.AdvanceStatus(application.ID, constants.ApplicationStatusCompleted)
	if err != nil {
		t.Fatalf("delivering->completed: %v", err)
	}

	// completed is terminal
	if _, err := apps.AdvanceStatus(application.ID, constants.ApplicationStatusPending); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("completed->pending: want ErrInvalidStatusTransition, got %v", err)
	}
}

func TestApplicationMetaLockedAfterPending(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	apps := NewApplicationService(repository.NewApplicationRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)
	order, err := orders.Create(1, supplier.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	application, err := apps.Create(1, []uint{order.ID}, constants.PaymentMethodCash, nil, "")
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	updated, err := apps.UpdateMeta(1, application.ID, constants.PaymentMethodOnline, nil, "ring twice")
	if err != nil {
		t.Fatalf("update pending application: %v", err)
	}
	if updated.PaymentMethod != constants.PaymentMethodOnline || updated.Comment != "ring twice" {
		t.Fatalf("meta not applied: %s / %q", updated.PaymentMethod, updated.Comment)
	}

	if _, err := apps.AdvanceStatus(application.ID, constants.ApplicationStatusDelivering); err != nil {
		t.Fatalf("advance status: %v", err)
	}
	if _, err := apps.UpdateMeta(1, application.ID, constants.PaymentMethodCash, nil, ""); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("edit after pending: want ErrInvalidStatusTransition, got %v", err)
	}
}
