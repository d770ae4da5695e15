package model

// Well-known transfer statuses. The field is a free label, not a closed enum;
// only Commit cares about these two values.
const (
	TransferStatusPending   = "Pending"
	TransferStatusCompleted = "Completed"
)

// Transfer records item quantities moved from one warehouse location to another.
type Transfer struct {
	BaseModel
	Reference      string `gorm:"type:varchar(100)" json:"reference"`
	FromLocationID *uint  `json:"from_location_id,omitempty"`
	ToLocationID   *uint  `json:"to_location_id,omitempty"`
	Status         string `gorm:"type:varchar(50);default:Pending" json:"status"`

	// Relasi - lines are owned exclusively, removed with the header
	Items []TransferItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	FromLocation *Location `gorm:"foreignKey:FromLocationID" json:"from_location,omitempty"`
	ToLocation   *Location `gorm:"foreignKey:ToLocationID" json:"to_location,omitempty"`
}

// TransferItem is one line of a transfer: an item UID and the amount moved.
type TransferItem struct {
	BaseModel
	TransferID uint   `gorm:"not null;index" json:"transfer_id"`
	ItemUID    string `gorm:"type:varchar(50);not null" json:"item_uid" validate:"required"`
	Amount     int    `gorm:"not null" json:"amount" validate:"required,gt=0"` // Amount harus > 0
}
