package service

import (
	"context"
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestSuppliersByCategoryAggregation(t *testing.T) {
	db := setupDB(t)
	svc := NewPricingService(
		repository.NewSupplierRepository(db),
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		60,
	)

	category := seedCategory(t, db, "Electronics", nil)
	other := seedCategory(t, db, "Household", nil)
	supplier := seedSupplier(t, db, "TechTrade", "Tashkent", *category)
	bare := seedSupplier(t, db, "NewVendor", "Bukhara", *category)

	phone := seedProduct(t, db, "Phone", "PH-1", &category.ID)
	tablet := seedProduct(t, db, "Tablet", "TB-1", &category.ID)
	kettle := seedProduct(t, db, "Kettle", "HK-1", &other.ID)
	seedPrice(t, db, supplier.ID, phone.ID, "100.00", 5)
	seedPrice(t, db, supplier.ID, tablet.ID, "200.00", 2)
	// a price row outside the category must not leak into the aggregation
	seedPrice(t, db, supplier.ID, kettle.ID, "10.00", 1)

	rows, err := svc.SuppliersByCategory(context.Background(), category.ID)
	if err != nil {
		t.Fatalf("suppliers by category: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 suppliers, got %d", len(rows))
	}

	byID := make(map[uint]repository.SupplierCategoryAgg, len(rows))
	for _, row := range rows {
		byID[row.SupplierID] = row
	}

	got := byID[supplier.ID]
	if got.ProductCount != 2 {
		t.Fatalf("product_count: want 2, got %d", got.ProductCount)
	}
	if got.MinDeliveryDays == nil || *got.MinDeliveryDays != 2 {
		t.Fatalf("min_delivery_days: want 2, got %v", got.MinDeliveryDays)
	}

	// a linked supplier with no priced products in the category still lists
	// with zero counts
	empty := byID[bare.ID]
	if empty.ProductCount != 0 {
		t.Fatalf("bare supplier product_count: want 0, got %d", empty.ProductCount)
	}
	if empty.MinDeliveryDays != nil {
		t.Fatalf("bare supplier min_delivery_days: want nil, got %d", *empty.MinDeliveryDays)
	}
}

func TestSuppliersByCategoryMissingCategory(t *testing.T) {
	db := setupDB(t)
	svc := NewPricingService(
		repository.NewSupplierRepository(db),
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		60,
	)

	if _, err := svc.SuppliersByCategory(context.Background(), 999); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("want ErrCategoryNotFound, got %v", err)
	}
}

func TestProductsBySupplier(t *testing.T) {
	db := setupDB(t)
	svc := NewPricingService(
		repository.NewSupplierRepository(db),
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		60,
	)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	rival := seedSupplier(t, db, "GadgetHub", "Bukhara")
	phone := seedProduct(t, db, "Phone", "PH-1", nil)
	tablet := seedProduct(t, db, "Tablet", "TB-1", nil)
	seedPrice(t, db, supplier.ID, phone.ID, "123.45", 4)
	seedPrice(t, db, rival.ID, tablet.ID, "50.00", 2)

	rows, err := svc.ProductsBySupplier(context.Background(), supplier.ID)
	if err != nil {
		t.Fatalf("products by supplier: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 product, got %d", len(rows))
	}
	if rows[0].ProductID != phone.ID {
		t.Fatalf("wrong product listed: %d", rows[0].ProductID)
	}
	if rows[0].Price.String() != "123.45" {
		t.Fatalf("price: want 123.45, got %s", rows[0].Price.String())
	}
	if rows[0].DeliveryDays != 4 {
		t.Fatalf("delivery_days: want 4, got %d", rows[0].DeliveryDays)
	}

	if _, err := svc.ProductsBySupplier(context.Background(), 999); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("missing supplier: want ErrSupplierNotFound, got %v", err)
	}
}
