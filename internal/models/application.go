package models

import "time"

// Application bundles pre-existing orders under shared payment and delivery
// metadata. Orders can outlive removal from an application (no cascade).
type Application struct {
	ID            uint       `gorm:"primarykey" json:"id"`                                        // primary key
	UserID        uint       `gorm:"not null;index" json:"user_id"`                               // submitter
	PaymentMethod string     `gorm:"type:varchar(20);not null" json:"payment_method"`             // cash / non_cash / online
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // pending -> delivering -> completed
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`                                     // requested delivery date
	Comment       string     `gorm:"type:text" json:"comment"`                                    // free-form note
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                                     // creation time, immutable
	UpdatedAt     time.Time  `json:"updated_at"`                                                  // update time

	Orders []Order `gorm:"many2many:application_orders" json:"orders,omitempty"` // bundled orders
}

// TableName sets the table name.
func (Application) TableName() string {
	return "applications"
}
