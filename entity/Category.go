package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	// same zero-value rule as MenuItem.Available: no column default
	Active bool `json:"active"`

	MenuItems []MenuItem `json:"-"`
}
