package repository

import (
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/shopspring/decimal"
)

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	City         string
	WithCategory bool
}

// SupplierListFilter narrows supplier listings.
type SupplierListFilter struct {
	Page       int
	PageSize   int
	Search     string
	City       string
	CategoryID uint
}

// ApplicationListFilter narrows application listings.
type ApplicationListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// SupplierCategoryAgg is one row of the suppliers-by-category aggregation:
// the supplier plus its product count and minimum delivery days within one
// category.
type SupplierCategoryAgg struct {
	SupplierID      uint            `json:"id"`
	Name            string          `json:"name"`
	City            string          `json:"city"`
	Logo            string          `json:"logo"`
	Rating          decimal.Decimal `json:"rating"`
	ProductCount    int64           `json:"product_count"`
	MinDeliveryDays *int            `json:"min_delivery_days"`
}

// SupplierProductAgg is one row of the products-by-supplier listing: the
// product plus the price and delivery terms from that supplier's price row.
type SupplierProductAgg struct {
	ProductID     uint         `json:"id"`
	Name          string       `json:"name"`
	Article       string       `json:"article"`
	Photo         string       `json:"photo"`
	City          string       `json:"city"`
	Price         models.Money `json:"price"`
	DeliveryDays  int          `json:"delivery_days"`
	DeliveryLabel string       `json:"delivery_label"`
}
