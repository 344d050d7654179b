package models

import "time"

// SupplierStat is a per-supplier order roll-up maintained asynchronously by
// the worker after order creation.
type SupplierStat struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                  // primary key
	SupplierID  uint      `gorm:"uniqueIndex;not null" json:"supplier_id"`               // supplier
	TotalOrders int64     `gorm:"not null;default:0" json:"total_orders"`                // order count
	TotalItems  int64     `gorm:"not null;default:0" json:"total_items"`                 // summed quantities
	TotalAmount Money     `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"` // summed order totals
	UpdatedAt   time.Time `json:"updated_at"`                                            // last recalc time
}

// TableName sets the table name.
func (SupplierStat) TableName() string {
	return "supplier_stats"
}
