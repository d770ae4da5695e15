package model

import "time"

type Order struct {
	BaseModel
	Reference string     `gorm:"type:varchar(100)" json:"reference"`
	ClientID  *uint      `json:"client_id,omitempty"`
	Status    string     `gorm:"type:varchar(50)" json:"status"`
	OrderDate *time.Time `json:"order_date,omitempty"`

	Items  []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Client *Client     `json:"client,omitempty" validate:"-"`
}

type OrderItem struct {
	BaseModel
	OrderID uint   `gorm:"not null;index" json:"order_id"`
	ItemUID string `gorm:"type:varchar(50);not null" json:"item_uid" validate:"required"`
	Amount  int    `gorm:"not null" json:"amount" validate:"required,gt=0"`
}
