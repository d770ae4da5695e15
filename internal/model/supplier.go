package model

type Supplier struct {
	BaseModel
	Code    string `gorm:"type:varchar(50);uniqueIndex" json:"code"`
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Country string `gorm:"type:varchar(100)" json:"country"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}
