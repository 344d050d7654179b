package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"
	"github.com/optomarket/optomarket-api/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
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
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Supplier{}, &models.Product{},
		&models.SupplierPrice{}, &models.Banner{}, &models.Cart{}, &models.CartItem{},
		&models.Favorite{}, &models.Order{}, &models.Application{}, &models.Delivery{},
		&models.SupplierStat{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.Cache.PricingTTLSeconds = 60

	container := provider.New(cfg, db)
	return New(container), db
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) response.Body {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("%s %s: transport status %d", method, path, rec.Code)
	}
	var envelope response.Body
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return envelope
}

func TestPricingSuppliersRequiresCategoryID(t *testing.T) {
	engine, _ := setupRouter(t)

	envelope := doRequest(t, engine, "GET", "/api/v1/public/pricing/suppliers", "", nil)
	if envelope.StatusCode != response.CodeBadRequest {
		t.Fatalf("want code %d, got %d", response.CodeBadRequest, envelope.StatusCode)
	}
}

func TestPricingSuppliersEmptyCategory(t *testing.T) {
	engine, db := setupRouter(t)

	category := models.Category{Name: "Electronics"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	envelope := doRequest(t, engine, "GET",
		fmt.Sprintf("/api/v1/public/pricing/suppliers?category_id=%d", category.ID), "", nil)
	if envelope.StatusCode != response.CodeOK {
		t.Fatalf("want code 0, got %d (%s)", envelope.StatusCode, envelope.Msg)
	}
	list, ok := envelope.Data.([]interface{})
	if !ok {
		t.Fatalf("want empty list payload, got %T", envelope.Data)
	}
	if len(list) != 0 {
		t.Fatalf("want empty list, got %d rows", len(list))
	}
}

func TestUserGroupRequiresToken(t *testing.T) {
	engine, _ := setupRouter(t)

	envelope := doRequest(t, engine, "GET", "/api/v1/user/cart", "", nil)
	if envelope.StatusCode != response.CodeUnauthorized {
		t.Fatalf("want code %d, got %d", response.CodeUnauthorized, envelope.StatusCode)
	}
}

func TestAdminGroupRejectsPlainUser(t *testing.T) {
	engine, _ := setupRouter(t)

	register := doRequest(t, engine, "POST", "/api/v1/auth/register", "", gin.H{
		"email":    "user@example.com",
		"password": "secret123",
	})
	if register.StatusCode != response.CodeOK {
		t.Fatalf("register failed: %d %s", register.StatusCode, register.Msg)
	}
	login := doRequest(t, engine, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "user@example.com",
		"password": "secret123",
	})
	if login.StatusCode != response.CodeOK {
		t.Fatalf("login failed: %d %s", login.StatusCode, login.Msg)
	}
	data, ok := login.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("login payload shape: %T", login.Data)
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("no token issued")
	}

	envelope := doRequest(t, engine, "POST", "/api/v1/admin/categories", token, gin.H{"name": "X"})
	if envelope.StatusCode != response.CodeForbidden {
		t.Fatalf("want code %d, got %d", response.CodeForbidden, envelope.StatusCode)
	}
}

func TestCartFlowOverHTTP(t *testing.T) {
	engine, db := setupRouter(t)

	product := models.Product{Name: "Phone", Article: "PH-1"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	doRequest(t, engine, "POST", "/api/v1/auth/register", "", gin.H{
		"email":    "buyer@example.com",
		"password": "secret123",
	})
	login := doRequest(t, engine, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "buyer@example.com",
		"password": "secret123",
	})
	data := login.Data.(map[string]interface{})
	token := data["token"].(string)

	add := doRequest(t, engine, "POST", "/api/v1/user/cart/items", token, gin.H{
		"product_id": product.ID,
		"quantity":   2,
	})
	if add.StatusCode != response.CodeOK {
		t.Fatalf("add to cart: %d %s", add.StatusCode, add.Msg)
	}
	again := doRequest(t, engine, "POST", "/api/v1/user/cart/items", token, gin.H{
		"product_id": product.ID,
		"quantity":   3,
	})
	if again.StatusCode != response.CodeOK {
		t.Fatalf("second add: %d %s", again.StatusCode, again.Msg)
	}

	cart := again.Data.(map[string]interface{})
	items := cart["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("want 1 line, got %d", len(items))
	}
	line := items[0].(map[string]interface{})
	if qty := line["quantity"].(float64); qty != 5 {
		t.Fatalf("want quantity 5, got %v", qty)
	}
}
