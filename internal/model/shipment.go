package model

import "time"

type Shipment struct {
	BaseModel
	Reference    string     `gorm:"type:varchar(100)" json:"reference"`
	CarrierCode  string     `gorm:"type:varchar(50)" json:"carrier_code"`
	Status       string     `gorm:"type:varchar(50)" json:"status"`
	OrderID      *uint      `json:"order_id,omitempty"`
	ShipmentDate *time.Time `json:"shipment_date,omitempty"`

	Order *Order `json:"order,omitempty" validate:"-"`
}
