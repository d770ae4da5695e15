package model

type Warehouse struct {
	BaseModel
	Code    string `gorm:"type:varchar(50);uniqueIndex" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Country string `gorm:"type:varchar(100)" json:"country"`

	// Relasi
	Locations []Location `json:"locations,omitempty"`
	Docks     []Dock     `json:"docks,omitempty"`
}
