package models

import "time"

// Category forms a tree via ParentID. Deleting a parent nulls the children's
// link instead of cascading.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                             // primary key
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`                           // display name
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`                                 // parent category, nullable
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`                                // ordering weight
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                          // creation time
	Parent    *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`        // parent link
	Suppliers []Supplier `gorm:"many2many:supplier_categories" json:"suppliers,omitempty"`        // linked suppliers
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
