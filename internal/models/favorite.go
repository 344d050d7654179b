package models

import "time"

// Favorite bookmarks a product and optionally the supplier it was seen at.
// These rows are the single source of truth for the denormalized
// Product.IsFavorite / Supplier.IsFavourite flags.
// NULL supplier_id values compare distinct, so the triple index alone would
// not block duplicate supplier-less rows; the partial index covers that case.
type Favorite struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                           // primary key
	UserID     uint      `gorm:"not null;uniqueIndex:idx_fav_user_product_supplier;uniqueIndex:idx_fav_user_product_nosupplier,where:supplier_id IS NULL" json:"user_id"` // owner
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_fav_user_product_supplier;uniqueIndex:idx_fav_user_product_nosupplier" json:"product_id"` // product
	SupplierID *uint     `gorm:"uniqueIndex:idx_fav_user_product_supplier" json:"supplier_id,omitempty"` // optional supplier
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                        // creation time

	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`   // product
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty"` // supplier
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}
