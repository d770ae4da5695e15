package model

// Item is a stock-keeping unit identified by a unique code (UID).
type Item struct {
	BaseModel
	UID           string `gorm:"type:varchar(50);uniqueIndex;not null" json:"uid"`
	Code          string `gorm:"type:varchar(50)" json:"code"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description   string `json:"description"`
	UnitOfMeasure string `gorm:"type:varchar(20)" json:"unit_of_measure"`
	UnitPrice     int64  `gorm:"default:0" json:"unit_price"`
	SupplierID    *uint  `json:"supplier_id,omitempty"`

	Supplier *Supplier `json:"supplier,omitempty" validate:"-"`
}
