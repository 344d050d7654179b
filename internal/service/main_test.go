package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/queue"
	"github.com/optomarket/optomarket-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB opens an isolated in-memory database per test and migrates the
// schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.SupplierPrice{},
		&models.Banner{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Order{},
		&models.Application{},
		&models.Delivery{},
		&models.SupplierStat{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create fixture %T: %v", value, err)
	}
}

func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, ParentID: parentID}
	mustCreate(t, db, category)
	return category
}

func seedSupplier(t *testing.T, db *gorm.DB, name, city string, categories ...models.Category) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{
		Name:       name,
		City:       city,
		Rating:     decimal.NewFromFloat(4.5),
		Categories: categories,
	}
	mustCreate(t, db, supplier)
	return supplier
}

func seedProduct(t *testing.T, db *gorm.DB, name, article string, categoryID *uint) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Article: article, CategoryID: categoryID}
	mustCreate(t, db, product)
	return product
}

func seedPrice(t *testing.T, db *gorm.DB, supplierID, productID uint, price string, deliveryDays int) *models.SupplierPrice {
	t.Helper()
	money, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price %q: %v", price, err)
	}
	row := &models.SupplierPrice{
		SupplierID:   supplierID,
		ProductID:    productID,
		Price:        money,
		DeliveryDays: deliveryDays,
	}
	mustCreate(t, db, row)
	return row
}

// newOrderService builds an order service with a disabled queue producer.
func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewSupplierPriceRepository(db),
		repository.NewSupplierRepository(db),
		repository.NewProductRepository(db),
		&queue.Client{},
	)
}

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return NewFavoriteService(
		db,
		repository.NewFavoriteRepository(db),
		repository.NewProductRepository(db),
		repository.NewSupplierRepository(db),
	)
}
