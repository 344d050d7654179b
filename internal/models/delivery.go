package models

import "time"

// Delivery is a shipment request tied to a user.
type Delivery struct {
	ID            uint       `gorm:"primarykey" json:"id"`                                          // primary key
	UserID        uint       `gorm:"not null;index" json:"user_id"`                                 // owner
	Address       string     `gorm:"type:varchar(255);not null" json:"address"`                     // destination address
	ContactNumber string     `gorm:"type:varchar(32);not null" json:"contact_number"`               // contact phone
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`                                       // planned date
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // pending -> in_transit -> delivered, cancellable
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                                       // creation time
	UpdatedAt     time.Time  `json:"updated_at"`                                                    // update time
}

// TableName sets the table name.
func (Delivery) TableName() string {
	return "deliveries"
}
