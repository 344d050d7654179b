package service

import (
	"errors"
	"testing"

	"github.com/optomarket/optomarket-api/internal/models"
)

func TestFavoriteAddSetsGlobalFlags(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService(db)

	category := seedCategory(t, db, "Electronics", nil)
	supplier := seedSupplier(t, db, "TechTrade", "Tashkent", *category)
	product := seedProduct(t, db, "Phone", "PH-1", &category.ID)

	if _, err := svc.Add(1, product.ID, &supplier.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	var gotProduct models.Product
	if err := db.First(&gotProduct, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if !gotProduct.IsFavorite {
		t.Fatal("product flag not raised after add")
	}
	var gotSupplier models.Supplier
	if err := db.First(&gotSupplier, supplier.ID).Error; err != nil {
		t.Fatalf("reload supplier: %v", err)
	}
	if !gotSupplier.IsFavourite {
		t.Fatal("supplier flag not raised after add")
	}
}

func TestFavoriteDuplicateRejected(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService(db)

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.Add(1, product.ID, nil); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.Add(1, product.ID, nil); !errors.Is(err, ErrDuplicateFavorite) {
		t.Fatalf("second add: want ErrDuplicateFavorite, got %v", err)
	}
}

// Writers racing past the existence check still hit the partial unique
// index on supplier-less rows.
func TestFavoriteNullSupplierUniqueConstraint(t *testing.T) {
	db := setupDB(t)

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	first := models.Favorite{UserID: 1, ProductID: product.ID}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first row: %v", err)
	}
	second := models.Favorite{UserID: 1, ProductID: product.ID}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("duplicate supplier-less favorite accepted by the schema")
	}
}

// The flags are global: removing one user's favorite keeps the flag up
// while any other user still favors the product.
func TestFavoriteRemoveKeepsFlagWhileOthersRemain(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService(db)

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if _, err := svc.Add(1, product.ID, nil); err != nil {
		t.Fatalf("user 1 add: %v", err)
	}
	if _, err := svc.Add(2, product.ID, nil); err != nil {
		t.Fatalf("user 2 add: %v", err)
	}

	if err := svc.Remove(1, product.ID, nil); err != nil {
		t.Fatalf("user 1 remove: %v", err)
	}
	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if !got.IsFavorite {
		t.Fatal("flag dropped while another user's favorite remains")
	}

	if err := svc.Remove(2, product.ID, nil); err != nil {
		t.Fatalf("user 2 remove: %v", err)
	}
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.IsFavorite {
		t.Fatal("flag still raised after last favorite removed")
	}
}

func TestFavoriteRemoveMissing(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService(db)

	product := seedProduct(t, db, "Phone", "PH-1", nil)

	if err := svc.Remove(1, product.ID, nil); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("want ErrFavoriteNotFound, got %v", err)
	}
}

func TestReconcileFlagsRepairsDrift(t *testing.T) {
	db := setupDB(t)
	svc := newFavoriteService(db)

	favored := seedProduct(t, db, "Phone", "PH-1", nil)
	stale := seedProduct(t, db, "Kettle", "HK-1", nil)

	if _, err := svc.Add(1, favored.ID, nil); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// simulate drift: a flag raised with no backing favorite row
	if err := db.Model(&models.Product{}).Where("id = ?", stale.ID).Update("is_favorite", true).Error; err != nil {
		t.Fatalf("force stale flag: %v", err)
	}

	if err := svc.ReconcileFlags(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	var gotStale, gotFavored models.Product
	if err := db.First(&gotStale, stale.ID).Error; err != nil {
		t.Fatalf("reload stale product: %v", err)
	}
	if gotStale.IsFavorite {
		t.Fatal("stale flag not cleared")
	}
	if err := db.First(&gotFavored, favored.ID).Error; err != nil {
		t.Fatalf("reload favored product: %v", err)
	}
	if !gotFavored.IsFavorite {
		t.Fatal("valid flag lost during reconcile")
	}
}
