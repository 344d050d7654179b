package models

import "time"

// Product catalog entry. Supplier-specific price and delivery terms live in
// SupplierPrice; IsFavorite mirrors the existence of Favorite rows.
type Product struct {
	ID              uint      `gorm:"primarykey" json:"id"`                       // primary key
	Name            string    `gorm:"type:varchar(255);not null;index" json:"name"` // display name
	Article         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"article"` // SKU-like identifier
	Description     string    `gorm:"type:text" json:"description"`               // long description
	Characteristics JSON      `gorm:"type:json" json:"characteristics"`           // free-form attributes
	City            string    `gorm:"type:varchar(100)" json:"city"`              // origin city
	Photo           string    `gorm:"type:varchar(500)" json:"photo"`             // photo URL (external media)
	IsFavorite      bool      `gorm:"not null;default:false" json:"is_favorite"`  // true iff >=1 favorite row references this product
	CategoryID      *uint     `gorm:"index" json:"category_id,omitempty"`         // owning category, nullable
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                    // creation time
	UpdatedAt       time.Time `json:"updated_at"`                                 // update time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"` // owning category
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
