package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a wholesale vendor. IsFavourite is a denormalized cache over
// Favorite rows; the rows stay authoritative.
type Supplier struct {
	ID            uint            `gorm:"primarykey" json:"id"`                                  // primary key
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`                // display name
	City          string          `gorm:"type:varchar(100);index" json:"city"`                   // home city
	Rating        decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`    // average rating
	ContactNumber string          `gorm:"type:varchar(32)" json:"contact_number"`                // contact phone
	Logo          string          `gorm:"type:varchar(500)" json:"logo"`                         // logo URL (external media)
	IsFavourite   bool            `gorm:"not null;default:false" json:"is_favourite"`            // true iff >=1 favorite row references this supplier
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`                               // creation time
	UpdatedAt     time.Time       `json:"updated_at"`                                            // update time

	Categories []Category `gorm:"many2many:supplier_categories" json:"categories,omitempty"` // served categories
}

// TableName sets the table name.
func (Supplier) TableName() string {
	return "suppliers"
}
