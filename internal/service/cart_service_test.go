package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/repository"
)

func TestCartGetCreatesOnFirstAccess(t *testing.T) {
	db := setupDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))

	cart, err := svc.Get(1)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if cart.ID == 0 {
		t.Fatal("cart not created")
	}
	if len(cart.Items) != 0 {
		t.Fatalf("new cart has %d items", len(cart.Items))
	}

	again, err := svc.Get(1)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("second get returned a different cart: %d vs %d", again.ID, cart.ID)
	}
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	db := setupDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.AddItem(1, product.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("want 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddRejectsBadInput(t *testing.T) {
	db := setupDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.AddItem(1, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: want ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(1, 999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("missing product: want ErrProductNotFound, got %v", err)
	}
}

func TestCartSetAndRemoveItem(t *testing.T) {
	db := setupDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.SetItemQuantity(1, product.ID, 7)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if cart.Items[0].Quantity != 7 {
		t.Fatalf("want quantity 7, got %d", cart.Items[0].Quantity)
	}

	if err := svc.RemoveItem(1, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	cart, err = svc.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart still has %d lines", len(cart.Items))
	}

	if err := svc.RemoveItem(1, product.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("remove missing line: want ErrCartItemNotFound, got %v", err)
	}
}
