package models

import "time"

// Cart is the single per-user cart; items cascade on delete.
type Cart struct {
	ID        uint       `gorm:"primarykey" json:"id"`                // primary key
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"` // owner, one cart per user
	CreatedAt time.Time  `json:"created_at"`                          // creation time
	UpdatedAt time.Time  `json:"updated_at"`                          // update time
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // line items
}

// TableName sets the table name.
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product line; repeated adds increment Quantity instead of
// duplicating the row.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                     // primary key
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`     // owning cart
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`  // product
	Quantity  int       `gorm:"not null" json:"quantity"`                                 // positive quantity
	CreatedAt time.Time `json:"created_at"`                                               // creation time
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                  // update time

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"` // product summary
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
