package model

type Supplier struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Address string `gorm:"type:varchar(255);not null" json:"address" validate:"required,max=255"`
	Phone   string `gorm:"type:varchar(20);not null" json:"phone" validate:"required,max=20"`
	Email   string `gorm:"type:varchar(255);not null" json:"email" validate:"required,email,max=255"`
}
