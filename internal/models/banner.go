package models

import "time"

// Banner is a storefront promo tile pointing at a category, supplier or
// product. Photo is an external media URL.
type Banner struct {
	ID         uint      `gorm:"primarykey" json:"id"`               // primary key
	Title      string    `gorm:"type:varchar(255)" json:"title"`     // display title
	Photo      string    `gorm:"type:varchar(500)" json:"photo"`     // image URL
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"` // optional category target
	SupplierID *uint     `gorm:"index" json:"supplier_id,omitempty"` // optional supplier target
	ProductID  *uint     `gorm:"index" json:"product_id,omitempty"`  // optional product target
	IsActive   bool      `gorm:"default:true;index" json:"is_active"` // visibility flag
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`  // ordering weight
	CreatedAt  time.Time `json:"created_at"`                         // creation time
	UpdatedAt  time.Time `json:"updated_at"`                         // update time
}

// TableName sets the table name.
func (Banner) TableName() string {
	return "banners"
}
