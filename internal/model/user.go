package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDropshipper Role = "dropshipper"
	RoleWarehouse   Role = "warehouse"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Role       Role   `gorm:"type:varchar(20);not null;default:'dropshipper'" json:"role" validate:"omitempty,oneof=admin dropshipper warehouse"`
	Name       string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	OutletName string `gorm:"type:varchar(255)" json:"outlet_name" validate:"required,max=255"`
	Address    string `gorm:"type:varchar(255)" json:"address" validate:"max=255"`
	Phone      string `gorm:"type:varchar(255)" json:"phone" validate:"max=255"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data).
// Denormalized transaction views embed this shape, never the full User.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Role       Role      `json:"role"`
	Name       string    `json:"name"`
	OutletName string    `json:"outlet_name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Role:       u.Role,
		Name:       u.Name,
		OutletName: u.OutletName,
		Address:    u.Address,
		Phone:      u.Phone,
		Email:      u.Email,
		CreatedAt:  u.CreatedAt,
		CreatedBy:  u.CreatedBy,
	}
}
