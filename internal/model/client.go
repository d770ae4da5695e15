package model

type Client struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Country string `gorm:"type:varchar(100)" json:"country"`

	// Relasi - contacts are owned exclusively, removed with the client
	Contacts []Contact `gorm:"constraint:OnDelete:CASCADE" json:"contacts,omitempty"`
}

type Contact struct {
	BaseModel
	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email    string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
}
