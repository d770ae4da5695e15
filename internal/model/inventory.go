package model

// Inventory holds the current quantity of an item at a single location.
type Inventory struct {
	BaseModel
	ItemID     uint `gorm:"not null;uniqueIndex:idx_item_location" json:"item_id" validate:"required,gt=0"`
	LocationID uint `gorm:"not null;uniqueIndex:idx_item_location" json:"location_id" validate:"required,gt=0"`
	Quantity   int  `gorm:"default:0" json:"quantity" validate:"gte=0"`

	Item     *Item     `json:"item,omitempty" validate:"-"`
	Location *Location `json:"location,omitempty" validate:"-"`
}
