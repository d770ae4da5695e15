package model

// Location is an addressable storage slot (row/rack/shelf) inside a warehouse.
type Location struct {
	BaseModel
	WarehouseID uint   `gorm:"not null;index" json:"warehouse_id" validate:"required,gt=0"`
	Code        string `gorm:"type:varchar(50)" json:"code"`
	Row         string `gorm:"type:varchar(20)" json:"row"`
	Rack        string `gorm:"type:varchar(20)" json:"rack"`
	Shelf       string `gorm:"type:varchar(20)" json:"shelf"`

	Warehouse *Warehouse `json:"warehouse,omitempty" validate:"-"`
}
