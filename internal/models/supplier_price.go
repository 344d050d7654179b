package models

import "time"

// SupplierPrice records one supplier's terms for one product. The
// (supplier, product) pair is unique; DeliveryDays is the structured value
// used in MIN aggregation, DeliveryLabel is free text for display.
type SupplierPrice struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                               // primary key
	SupplierID    uint      `gorm:"not null;uniqueIndex:idx_supplier_product" json:"supplier_id"`       // supplier
	ProductID     uint      `gorm:"not null;uniqueIndex:idx_supplier_product" json:"product_id"`        // product
	Price         Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`                 // unit price
	DeliveryDays  int       `gorm:"not null;default:0" json:"delivery_days"`                            // delivery time in days
	DeliveryLabel string    `gorm:"type:varchar(100)" json:"delivery_label"`                            // human-readable delivery time
	CreatedAt     time.Time `json:"created_at"`                                                         // creation time
	UpdatedAt     time.Time `json:"updated_at"`                                                         // update time

	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty"` // supplier
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`   // product
}

// TableName sets the table name.
func (SupplierPrice) TableName() string {
	return "supplier_prices"
}
