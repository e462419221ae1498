package entity

import (
	"gorm.io/gorm"
)

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleAdminStaff Role = "ADMIN_STAFF"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:CLIENT" json:"role"`

	// preload only when a detail endpoint needs them
	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
