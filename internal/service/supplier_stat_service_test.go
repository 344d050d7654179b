package service

import (
	"testing"

	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestSupplierStatsRecalc(t *testing.T) {
	db := setupDB(t)
	orders := newOrderService(db)
	stats := NewSupplierStatService(repository.NewSupplierStatRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)

	if _, err := orders.Create(1, supplier.ID, product.ID, 2); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := orders.Create(2, supplier.ID, product.ID, 3); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := stats.Recalc(supplier.ID); err != nil {
		t.Fatalf("recalc: %v", err)
	}
	stat, err := stats.Get(supplier.ID)
	if err != nil {
		t.Fatalf("get stat: %v", err)
	}
	if stat.TotalOrders != 2 {
		t.Fatalf("total_orders: want 2, got %d", stat.TotalOrders)
	}
	if stat.TotalItems != 5 {
		t.Fatalf("total_items: want 5, got %d", stat.TotalItems)
	}
	if stat.TotalAmount.String() != "50.00" {
		t.Fatalf("total_amount: want 50.00, got %s", stat.TotalAmount.String())
	}

	// a second recalc upserts rather than duplicating
	if _, err := orders.Create(1, supplier.ID, product.ID, 1); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := stats.Recalc(supplier.ID); err != nil {
		t.Fatalf("second recalc: %v", err)
	}
	stat, err = stats.Get(supplier.ID)
	if err != nil {
		t.Fatalf("get stat: %v", err)
	}
	if stat.TotalOrders != 3 || stat.TotalAmount.String() != "60.00" {
		t.Fatalf("after second recalc: orders=%d amount=%s", stat.TotalOrders, stat.TotalAmount.String())
	}
}

func TestSupplierStatsZeroWithoutOrders(t *testing.T) {
	db := setupDB(t)
	stats := NewSupplierStatService(repository.NewSupplierStatRepository(db), repository.NewOrderRepository(db))

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")

	stat, err := stats.Get(supplier.ID)
	if err != nil {
		t.Fatalf("get stat: %v", err)
	}
	if stat.TotalOrders != 0 || stat.TotalItems != 0 {
		t.Fatalf("want zeros, got orders=%d items=%d", stat.TotalOrders, stat.TotalItems)
	}
}
