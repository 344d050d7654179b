package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestOrderTotalIsPriceTimesQuantity(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "19.99", 3)

	order, err := svc.Create(1, supplier.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if got := order.TotalCost.String(); got != "59.97" {
		t.Fatalf("want total 59.97, got %s", got)
	}
}

func TestOrderRejectedWithoutPriceRow(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.Create(1, supplier.ID, product.ID, 1); !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("want ErrPriceNotFound, got %v", err)
	}
	if _, err := svc.Create(1, supplier.ID, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
}

// Missing references are reported as such, not as a missing price row.
func TestOrderDistinguishesMissingReferences(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "19.99", 3)

	if _, err := svc.Create(1, supplier.ID, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("absent product: want ErrProductNotFound, got %v", err)
	}
	if _, err := svc.Create(1, 9999, product.ID, 1); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("absent supplier: want ErrSupplierNotFound, got %v", err)
	}
	if _, err := svc.Create(1, 9999, 9999, 1); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("both absent: want ErrSupplierNotFound, got %v", err)
	}
}

// The order total is frozen at creation: a later price change must not
// touch it.
func TestOrderTotalImmutableAfterPriceChange(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	prices := repository.NewSupplierPriceRepository(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	priceRow := seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)

	order, err := svc.Create(1, supplier.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	newPrice, err := models.NewMoneyFromString("99.99")
	if err != nil {
		t.Fatalf("parse money: %v", err)
	}
	priceRow.Price = newPrice
	if err := prices.Update(priceRow); err != nil {
		t.Fatalf("update price: %v", err)
	}

	got, err := svc.Get(1, order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if got.TotalCost.String() != "20.00" {
		t.Fatalf("total drifted after price change: %s", got.TotalCost.String())
	}
}

func TestOrderOwnershipScoped(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "5.00", 1)

	order, err := svc.Create(1, supplier.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := svc.Get(2, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign order visible: %v", err)
	}

	orders, total, err := svc.ListByUser(1, 1, 10)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("want 1 order, got total=%d len=%d", total, len(orders))
	}
}
