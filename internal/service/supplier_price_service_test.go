package service

import (
	"context"
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/repository"

	"gorm.io/gorm"
)

func newPriceService(db *gorm.DB) *SupplierPriceService {
	suppliers := repository.NewSupplierRepository(db)
	products := repository.NewProductRepository(db)
	categories := repository.NewCategoryRepository(db)
	return NewSupplierPriceService(
		repository.NewSupplierPriceRepository(db),
		suppliers,
		products,
		NewPricingService(suppliers, products, categories, 60),
	)
}

func TestSupplierPriceUniquePair(t *testing.T) {
	db := setupDB(t)
	svc := newPriceService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)

	price, err := models.NewMoneyFromString("10.00")
	if err != nil {
		t.Fatalf("parse money: %v", err)
	}
	first := &models.SupplierPrice{SupplierID: supplier.ID, ProductID: product.ID, Price: price, DeliveryDays: 3}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("create price: %v", err)
	}

	dup := &models.SupplierPrice{SupplierID: supplier.ID, ProductID: product.ID, Price: price, DeliveryDays: 5}
	if err := svc.Create(context.Background(), dup); !errors.Is(err, ErrPriceExists) {
		t.Fatalf("want ErrPriceExists, got %v", err)
	}
}

func TestSupplierPriceValidatesReferences(t *testing.T) {
	db := setupDB(t)
	svc := newPriceService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	price, _ := models.NewMoneyFromString("10.00")

	missingSupplier := &models.SupplierPrice{SupplierID: 999, ProductID: product.ID, Price: price}
	if err := svc.Create(context.Background(), missingSupplier); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("want ErrSupplierNotFound, got %v", err)
	}
	missingProduct := &models.SupplierPrice{SupplierID: supplier.ID, ProductID: 999, Price: price}
	if err := svc.Create(context.Background(), missingProduct); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestSupplierPriceUpdateKeepsPair(t *testing.T) {
	db := setupDB(t)
	svc := newPriceService(db)

	supplier := seedSupplier(t, db, "TechTrade", "Tashkent")
	product := seedProduct(t, db, "Phone", "PH-1", nil)
	row := seedPrice(t, db, supplier.ID, product.ID, "10.00", 3)

	newPrice, _ := models.NewMoneyFromString("12.50")
	updated, err := svc.Update(context.Background(), row.ID, newPrice, 2, "2 days")
	if err != nil {
		t.Fatalf("update price: %v", err)
	}
	if updated.SupplierID != supplier.ID || updated.ProductID != product.ID {
		t.Fatal("pair changed on update")
	}
	if updated.Price.String() != "12.50" || updated.DeliveryDays != 2 {
		t.Fatalf("terms not applied: %s / %d", updated.Price.String(), updated.DeliveryDays)
	}
}
