package models

import "time"

// Order is a single supplier+product+quantity purchase. TotalCost is computed
// once at creation from the matching SupplierPrice row and never updated.
type Order struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                // primary key
	UserID     uint      `gorm:"not null;index" json:"user_id"`                       // buyer
	SupplierID uint      `gorm:"not null;index" json:"supplier_id"`                   // supplier
	ProductID  uint      `gorm:"not null;index" json:"product_id"`                    // product
	Quantity   int       `gorm:"not null" json:"quantity"`                            // positive quantity
	TotalCost  Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_cost"` // price x quantity, immutable
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                             // creation time

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"` // supplier
	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`   // product
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
